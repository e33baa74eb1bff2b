package notify

import (
	"log/slog"

	"github.com/Montsi0721/resturant-site/config"

	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound email for the mail relay.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers a message to the mail relay. One attempt, no retry; the
// caller decides what a failure means for the client response.
type Sender interface {
	Send(m Message) error
}

// Mailer submits messages over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	log    *slog.Logger
}

func NewMailer(cfg config.MailConfig, log *slog.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		log:    log,
	}
}

func (m *Mailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.log.Error("mail send failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return err
	}
	m.log.Info("mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
