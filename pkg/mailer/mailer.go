package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/almaspay/backend/config"
	"github.com/almaspay/backend/internal/model"
	"github.com/almaspay/backend/pkg/logger"
	"gopkg.in/gomail.v2"
)

const contactNotificationTemplate = `
<h2>New Contact Submission</h2>
<table cellpadding="6" style="border-collapse:collapse">
  <tr><td><b>Name</b></td><td>{{ .Name }}</td></tr>
  <tr><td><b>Email</b></td><td>{{ .Email }}</td></tr>
  {{- if .Company }}
  <tr><td><b>Company</b></td><td>{{ .Company }}</td></tr>
  {{- end }}
  {{- if .Phone }}
  <tr><td><b>Phone</b></td><td>{{ .Phone }}</td></tr>
  {{- end }}
  <tr><td><b>Subject</b></td><td>{{ .Subject | default "General Inquiry" }}</td></tr>
  <tr><td><b>Urgency</b></td><td>{{ .Urgency | title }}</td></tr>
  <tr><td><b>Preferred contact</b></td><td>{{ .PreferredContact | title }}</td></tr>
</table>
<h3>Message</h3>
<p>{{ .Message }}</p>
`

// Mailer sends transactional email over SMTP. When SMTP is not configured it
// acts as a no-op so lead intake keeps working in environments without mail.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	enabled    bool
	tmpl       *template.Template
}

// NewMailer builds a mailer from config. A missing SMTP host or admin email
// disables sending.
func NewMailer(cfg *config.Config) (*Mailer, error) {
	tmpl, err := template.New("contact").Funcs(sprig.HtmlFuncMap()).Parse(contactNotificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail template: %w", err)
	}

	m := &Mailer{
		adminEmail: cfg.SMTP.AdminEmail,
		tmpl:       tmpl,
	}

	if !cfg.EmailEnabled() {
		logger.GetLogger().Warn("SMTP not configured, email notifications disabled")
		return m, nil
	}

	m.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password)
	m.from = cfg.SMTP.User
	m.enabled = true
	return m, nil
}

// Enabled reports whether the mailer will actually send
func (m *Mailer) Enabled() bool {
	return m != nil && m.enabled
}

// SendContactNotification emails the admin about a new contact submission.
// Returns nil when sending is disabled.
func (m *Mailer) SendContactNotification(ctx context.Context, submission *model.ContactSubmission) error {
	if !m.Enabled() {
		return nil
	}

	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, submission); err != nil {
		return fmt.Errorf("failed to render mail body: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New contact submission: %s", submission.Subject))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.ErrorWithContext(ctx, "Failed to send contact notification").
			String("to", m.adminEmail).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Contact notification sent").
		String("to", m.adminEmail).
		Log()
	return nil
}
