package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// EmailNotifier sends booking confirmations to customers and alerts to the
// studio inbox. Delivery failures are logged and dropped.
type EmailNotifier struct {
	mailer     Mailer
	templates  *Templates
	adminEmail string
	logger     *slog.Logger
}

func NewEmailNotifier(mailer Mailer, templates *Templates, adminEmail string, logger *slog.Logger) *EmailNotifier {
	return &EmailNotifier{
		mailer:     mailer,
		templates:  templates,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, event Event) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.ErrorContext(ctx, "notifier panicked", slog.String("event", string(event.Kind)), slog.Any("panic", r))
		}
	}()

	for _, msg := range n.messages(ctx, event) {
		if err := n.mailer.Send(ctx, msg); err != nil {
			n.logger.ErrorContext(ctx, "email delivery failed",
				slog.String("event", string(event.Kind)),
				slog.String("subject", msg.Subject),
				slog.String("error", err.Error()))
		}
	}
}

// messages builds every email for event, skipping any that fail to render.
func (n *EmailNotifier) messages(ctx context.Context, event Event) []Message {
	type draft struct {
		to, subject, template string
		data                  any
	}
	var drafts []draft
	switch {
	case event.Kind == BookingCreated && event.Booking != nil:
		b := event.Booking
		view := newBookingView(b)
		drafts = []draft{
			{b.Email, "Booking Confirmation - Arena 45", tmplBookingCustomer, view},
			{n.adminEmail, fmt.Sprintf("New Booking: %s - %s", view.Service, b.Name), tmplBookingAdmin, view},
		}
	case event.Kind == ContactReceived && event.Contact != nil:
		c := event.Contact
		drafts = []draft{
			{n.adminEmail, "New Contact Form: " + c.Subject, tmplContactAdmin, newContactView(c)},
		}
	default:
		n.logger.WarnContext(ctx, "unhandled notification event", slog.String("event", string(event.Kind)))
		return nil
	}

	msgs := make([]Message, 0, len(drafts))
	for _, d := range drafts {
		body, err := n.templates.render(d.template, d.data)
		if err != nil {
			n.logger.ErrorContext(ctx, "email render failed", slog.String("error", errors.Wrap(err, string(event.Kind)).Error()))
			continue
		}
		msgs = append(msgs, Message{To: d.to, Subject: d.subject, HTMLBody: body})
	}
	return msgs
}
