package notify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Montsi0721/resturant-site/config"
	"github.com/Montsi0721/resturant-site/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram pushes new-order alerts to the admin chat. It is an extra channel
// next to the admin email; a nil *Telegram is valid and does nothing.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

// NewTelegram returns nil when no token is configured.
func NewTelegram(cfg config.TelegramConfig, log *slog.Logger) (*Telegram, error) {
	if cfg.Token == "" {
		return nil, nil
	}
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID not set")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	return &Telegram{api: api, chatID: cfg.ChatID, log: log}, nil
}

// OrderAlert sends a plain-text summary of the order. Failures are logged and
// swallowed; the alert never affects the client response.
func (t *Telegram) OrderAlert(o *models.Order) {
	if t == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d from %s (%s)\n", o.ID, o.CustomerName, o.CustomerPhone)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%d ($%.2f)\n", it.Name, it.Quantity, it.Price)
	}
	fmt.Fprintf(&b, "Total: $%.2f", o.TotalAmount)

	msg := tgbotapi.NewMessage(t.chatID, b.String())
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("telegram alert failed", "order_id", o.ID, "error", err)
	}
}
