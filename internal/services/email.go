package services

import (
	"gopkg.in/gomail.v2"

	"github.com/youssefrramdan/care-insight-api/internal/config"
	"github.com/youssefrramdan/care-insight-api/pkg/logger"
)

// SendEmail delivers an HTML mail through the configured SMTP server.
// Callers that don't care about delivery (verification mails) should run it
// in a goroutine via SendEmailAsync.
func SendEmail(to, subject, html string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.EmailHost == "" {
		logger.Warn().Str("to", to).Msg("SMTP not configured, skipping email")
		return nil
	}

	m := gomail.NewMessage()
	from := cfg.EmailFrom
	if from == "" {
		from = cfg.EmailUser
	}
	m.SetHeader("From", m.FormatAddress(from, "Care Insight"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword)
	if err := d.DialAndSend(m); err != nil {
		logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
		return err
	}

	logger.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}

// SendEmailAsync sends in the background; failures are logged only.
func SendEmailAsync(to, subject, html string) {
	go func() {
		_ = SendEmail(to, subject, html)
	}()
}
