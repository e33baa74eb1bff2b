package web

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/Montsi0721/resturant-site/models"
	"github.com/Montsi0721/resturant-site/notify"

	"github.com/gorilla/mux"
)

//go:embed static/index.html static/admin.html
var pagesFS embed.FS

// Store is what the handlers need from the services layer.
type Store interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	CreateReservation(ctx context.Context, input models.CreateReservationInput) (*models.Reservation, error)
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	CreateOrder(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateContactMessage(ctx context.Context, input models.CreateContactInput) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
}

type Server struct {
	store         Store
	mail          notify.Sender
	telegram      *notify.Telegram
	adminEmail    string
	adminPassword string
	log           *slog.Logger
}

func New(store Store, mail notify.Sender, telegram *notify.Telegram, adminEmail, adminPassword string, log *slog.Logger) *Server {
	return &Server{
		store:         store,
		mail:          mail,
		telegram:      telegram,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		log:           log,
	}
}

// Router builds the full handler chain: request logging, CORS, then routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu", s.handleListMenu).Methods(http.MethodGet)
	api.HandleFunc("/reservations", s.handleCreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations", s.handleListReservations).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/contact", s.handleContact).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", s.handleAdminLogin).Methods(http.MethodPost)
	api.HandleFunc("/admin/reservations", s.handleListReservations).Methods(http.MethodGet)
	api.HandleFunc("/admin/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/admin/contacts", s.handleListContacts).Methods(http.MethodGet)

	r.HandleFunc("/", s.servePage("static/index.html")).Methods(http.MethodGet)
	r.HandleFunc("/admin", s.servePage("static/admin.html")).Methods(http.MethodGet)

	return s.logRequests(addCORSHeaders(r))
}

func (s *Server) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pagesFS.ReadFile(name)
		if err != nil {
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}

func addCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
