package notify

import (
	"context"
	"log/slog"

	"arena45/backend/internal/config"
	"arena45/backend/internal/domain"
)

type EventKind string

const (
	BookingCreated  EventKind = "booking.created"
	ContactReceived EventKind = "contact.received"
)

// Event describes something that happened after a successful write.
// Exactly one of Booking or Contact is set, matching Kind.
type Event struct {
	Kind    EventKind
	Booking *domain.Booking
	Contact *domain.Contact
}

func BookingCreatedEvent(b *domain.Booking) Event {
	return Event{Kind: BookingCreated, Booking: b}
}

func ContactReceivedEvent(c *domain.Contact) Event {
	return Event{Kind: ContactReceived, Contact: c}
}

// Notifier is called once after a write has been committed. Implementations
// handle their own failures; nothing they do can undo the write.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// LogNotifier only records events. Used when no SMTP account is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	attrs := []any{slog.String("event", string(event.Kind))}
	switch {
	case event.Booking != nil:
		attrs = append(attrs, slog.String("booking_id", event.Booking.ID.Hex()), slog.String("email", event.Booking.Email))
	case event.Contact != nil:
		attrs = append(attrs, slog.String("contact_id", event.Contact.ID.Hex()), slog.String("subject", event.Contact.Subject))
	}
	n.logger.InfoContext(ctx, "notification skipped, email delivery disabled", attrs...)
}

// New picks the email notifier when SMTP credentials are present.
func New(cfg config.SMTPConfig, logger *slog.Logger) (Notifier, error) {
	if cfg.Host == "" || cfg.User == "" {
		logger.Warn("SMTP not configured, notifications will only be logged")
		return NewLogNotifier(logger), nil
	}
	templates, err := ParseTemplates()
	if err != nil {
		return nil, err
	}
	return NewEmailNotifier(NewSMTPMailer(cfg), templates, cfg.AdminEmail, logger), nil
}
