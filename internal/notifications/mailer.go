package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"bookceleb/internal/shared/config"
)

// BookingEmailData carries the fields rendered into the operator notification
// for a new booking request.
type BookingEmailData struct {
	CelebrityName string
	EventDate     time.Time
	EventType     string
	Budget        string
	Location      string
	FullName      string
	Email         string
	Phone         string
	JobTitle      string
	Message       string
}

// ContactEmailData carries the fields rendered into the operator notification
// for a contact form submission.
type ContactEmailData struct {
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// Mailer formats and dispatches the fixed notification emails. One send
// attempt per call; failures surface to the caller untouched.
type Mailer interface {
	SendBookingRequest(ctx context.Context, data BookingEmailData) error
	SendContactMessage(ctx context.Context, data ContactEmailData) error
}

type mailer struct {
	client    Client
	cfg       config.EmailConfig
	templates map[string]*template.Template
}

func NewMailer(client Client, cfg config.EmailConfig) Mailer {
	return &mailer{
		client:    client,
		cfg:       cfg,
		templates: loadTemplates(),
	}
}

const bookingEmailTemplate = `
<h2>New Booking Request Details</h2>
<p><strong>Celebrity:</strong> {{.CelebrityName}}</p>
<p><strong>Event Date:</strong> {{.DisplayDate}}</p>
<p><strong>Event Type:</strong> {{.EventType}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Location:</strong> {{.Location}}</p>
<h3>Customer Information</h3>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Job Title:</strong> {{.JobTitle}}</p>
<p><strong>Message:</strong> {{.DisplayMessage}}</p>
`

const contactEmailTemplate = `
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
<p><strong>Submitted at:</strong> {{.SubmittedAt}}</p>
`

func loadTemplates() map[string]*template.Template {
	return map[string]*template.Template{
		"booking": template.Must(template.New("booking").Parse(bookingEmailTemplate)),
		"contact": template.Must(template.New("contact").Parse(contactEmailTemplate)),
	}
}

// SendBookingRequest emails the operator, with the requester on copy.
func (m *mailer) SendBookingRequest(ctx context.Context, data BookingEmailData) error {
	message := data.Message
	if message == "" {
		message = "No message provided"
	}

	body, err := m.render("booking", map[string]interface{}{
		"CelebrityName":  data.CelebrityName,
		"DisplayDate":    data.EventDate.Format("1/2/2006"),
		"EventType":      data.EventType,
		"Budget":         data.Budget,
		"Location":       data.Location,
		"FullName":       data.FullName,
		"Email":          data.Email,
		"Phone":          data.Phone,
		"JobTitle":       data.JobTitle,
		"DisplayMessage": message,
	})
	if err != nil {
		return err
	}

	_, err = m.client.Send(ctx, &Email{
		From:    m.cfg.BookingFrom,
		To:      []string{m.cfg.OperatorEmail},
		Cc:      []string{data.Email},
		Subject: fmt.Sprintf("New Booking Request from %s", data.FullName),
		HTML:    body,
	})
	return err
}

// SendContactMessage emails the operator only; the sender gets no copy.
func (m *mailer) SendContactMessage(ctx context.Context, data ContactEmailData) error {
	body, err := m.render("contact", map[string]interface{}{
		"Name":        data.Name,
		"Email":       data.Email,
		"Message":     data.Message,
		"SubmittedAt": data.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = m.client.Send(ctx, &Email{
		From:    m.cfg.ContactFrom,
		To:      []string{m.cfg.OperatorEmail},
		Subject: "New Contact Form Submission",
		HTML:    body,
	})
	return err
}

func (m *mailer) render(name string, data interface{}) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return buf.String(), nil
}
