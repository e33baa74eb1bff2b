package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Montsi0721/resturant-site/config"
	"github.com/Montsi0721/resturant-site/db"
	"github.com/Montsi0721/resturant-site/notify"
	"github.com/Montsi0721/resturant-site/services"
	"github.com/Montsi0721/resturant-site/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Check for migrate subcommand
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := applyMigrations(ctx, pool, true); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
		return
	}

	store := services.New(pool, log)

	// Schema bootstrap runs before traffic is served. A failing step is
	// logged and the process keeps running; the affected endpoints will
	// report storage errors. Seeding only happens on a clean bootstrap.
	if err := applyMigrations(ctx, pool, false); err != nil {
		log.Error("schema bootstrap failed", "error", err)
	} else if err := store.SeedMenuIfEmpty(ctx); err != nil {
		log.Error("menu seeding failed", "error", err)
	}

	mailer := notify.NewMailer(cfg.Mail, log)
	telegram, err := notify.NewTelegram(cfg.Telegram, log)
	if err != nil {
		log.Error("telegram alerts disabled", "error", err)
	}

	srv := web.New(store, mailer, telegram, cfg.Admin.Email, cfg.Admin.Password, log)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Router(),
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
