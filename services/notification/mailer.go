package notification

import (
	"fmt"
	"regexp"

	"trimly/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers a single email. Implementations must treat delivery as
// best-effort; callers never see a failure as anything but a returned error.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from application config.
func NewSMTPMailer() (*SMTPMailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		return nil, fmt.Errorf("smtp credentials not configured")
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
	}, nil
}

// NopMailer discards every message. Used when SMTP is not configured so the
// rest of the app keeps working without email delivery.
type NopMailer struct{}

func (NopMailer) Send(to, subject, htmlBody string) error { return nil }

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", htmlTagRe.ReplaceAllString(htmlBody, ""))
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
