package notify

import (
	"bytes"
	"html/template"

	"arena45/backend/internal/domain"

	"github.com/cockroachdb/errors"
)

const (
	tmplBookingCustomer = "booking_customer"
	tmplBookingAdmin    = "booking_admin"
	tmplContactAdmin    = "contact_admin"
)

const layout = `{{define "layout"}}<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #222; max-width: 600px; margin: 0 auto;">
<div style="background: #111; color: #fff; padding: 20px; text-align: center;"><h1 style="margin: 0;">ARENA 45</h1></div>
<div style="padding: 24px;">{{template "content" .}}</div>
<div style="padding: 12px; font-size: 12px; color: #888; text-align: center;">Arena 45 Fitness Studio</div>
</body></html>{{end}}`

var bodies = map[string]string{
	tmplBookingCustomer: `{{define "content"}}
<h2>Booking received</h2>
<p>Hi {{.Name}},</p>
<p>Thank you for booking a session with us. We will contact you shortly to confirm.</p>
<table cellpadding="6">
<tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
<tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
<tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
{{if .Notes}}<tr><td><strong>Notes</strong></td><td>{{.Notes}}</td></tr>{{end}}
</table>
<p>See you at the studio!</p>
{{end}}`,
	tmplBookingAdmin: `{{define "content"}}
<h2>New booking</h2>
<table cellpadding="6">
<tr><td><strong>Service</strong></td><td>{{.Service}}</td></tr>
<tr><td><strong>Date</strong></td><td>{{.Date}}</td></tr>
<tr><td><strong>Time</strong></td><td>{{.Time}}</td></tr>
<tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
{{if .Notes}}<tr><td><strong>Notes</strong></td><td>{{.Notes}}</td></tr>{{end}}
<tr><td><strong>Status</strong></td><td>{{.Status}}</td></tr>
<tr><td><strong>Booking ID</strong></td><td>{{.ID}}</td></tr>
<tr><td><strong>Created</strong></td><td>{{.CreatedAt}}</td></tr>
</table>
{{end}}`,
	tmplContactAdmin: `{{define "content"}}
<h2>New contact form submission</h2>
<table cellpadding="6">
<tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>{{end}}
<tr><td><strong>Subject</strong></td><td>{{.Subject}}</td></tr>
<tr><td><strong>Received</strong></td><td>{{.CreatedAt}}</td></tr>
</table>
<p style="white-space: pre-wrap;">{{.Message}}</p>
{{end}}`,
}

const (
	longDate  = "Monday, January 2, 2006"
	timestamp = "2006-01-02 15:04:05 MST"
)

// Templates renders the notification emails.
type Templates struct {
	set map[string]*template.Template
}

func ParseTemplates() (*Templates, error) {
	t := &Templates{set: make(map[string]*template.Template, len(bodies))}
	for name, body := range bodies {
		tmpl, err := template.New(name).Parse(layout)
		if err != nil {
			return nil, errors.Wrap(err, "parse email layout")
		}
		if _, err := tmpl.Parse(body); err != nil {
			return nil, errors.Wrapf(err, "parse email template %s", name)
		}
		t.set[name] = tmpl
	}
	return t, nil
}

func (t *Templates) render(name string, data any) (string, error) {
	tmpl, ok := t.set[name]
	if !ok {
		return "", errors.Newf("unknown email template %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", errors.Wrapf(err, "render email template %s", name)
	}
	return buf.String(), nil
}

type bookingView struct {
	ID, Service, Date, Time, Name, Email, Phone, Notes, Status, CreatedAt string
}

func newBookingView(b *domain.Booking) bookingView {
	return bookingView{
		ID:        b.ID.Hex(),
		Service:   b.Service.DisplayName(),
		Date:      b.Date.Format(longDate),
		Time:      b.Time,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(timestamp),
	}
}

type contactView struct {
	Name, Email, Phone, Subject, Message, CreatedAt string
}

func newContactView(c *domain.Contact) contactView {
	return contactView{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.Format(timestamp),
	}
}
