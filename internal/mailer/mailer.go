package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"wastetrack/internal/config"
	"wastetrack/internal/logger"
)

// Mailer sends transactional mail over plain SMTP.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether an SMTP host has been set. Without one the
// mailer logs instead of sending, which keeps local development working.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Configured() {
		logger.Info("SMTP not configured, skipping mail",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// SendPasswordReset mails a reset token to the user.
func (m *Mailer) SendPasswordReset(to, token string) error {
	body := fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Your reset token is: %s\n\n"+
			"The token expires in one hour. If you did not request a reset, ignore this mail.",
		token,
	)
	return m.Send(to, "Password Reset Request", body)
}
