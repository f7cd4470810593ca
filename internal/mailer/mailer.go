// Package mailer delivers placement announcements over SMTP. When no SMTP
// host is configured the server falls back to the logging notifier so the
// announce endpoints keep working in development.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/suhan648/placementpro/internal/config"
)

// SMTP sends mail through a configured relay. It implements
// placement.Notifier.
type SMTP struct {
	cfg config.MailConfig
}

// NewSMTP creates an SMTP notifier from mail configuration.
func NewSMTP(cfg config.MailConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

// Notify sends one message. net/smtp dials without context support, so
// cancellation is only honored between sends.
func (m *SMTP) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, to, subject, body)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}

// buildMessage assembles an RFC 5322 message with CRLF line endings.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// Log records deliveries instead of sending them. Each logged message counts
// as delivered, which keeps notified counts meaningful in development.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a notifier that only logs.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs the message and reports success.
func (m *Log) Notify(_ context.Context, to, subject, _ string) error {
	m.logger.Info("mail delivery logged, smtp not configured",
		zap.String("to", to),
		zap.String("subject", subject))
	return nil
}
