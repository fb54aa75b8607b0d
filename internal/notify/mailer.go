package notify

import (
	"context"

	"arena45/backend/internal/config"

	"github.com/cockroachdb/errors"
	"gopkg.in/gomail.v2"
)

// Message is a single outgoing HTML email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers mail through an authenticated SMTP relay.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	fromAddr string
	fromName string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		fromAddr: cfg.User,
		fromName: cfg.FromName,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.fromAddr, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	if err := m.dialer.DialAndSend(gm); err != nil {
		return errors.Wrapf(err, "send mail to %s", msg.To)
	}
	return nil
}
