package config

import (
	"fmt"
	"os"
	"strconv"
)

// MailConfig holds SMTP settings for the notification mailer. When Host is
// empty the application falls back to a log-only notifier, so a deployment
// without mail credentials still works.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewMailConfig creates a mail configuration from environment variables.
// It reads SMTP_HOST (optional), SMTP_PORT (default: 587), SMTP_USERNAME,
// SMTP_PASSWORD, and SMTP_FROM (defaults to SMTP_USERNAME).
func NewMailConfig() (*MailConfig, error) {
	host := os.Getenv("SMTP_HOST")

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		portStr = "587"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	cfg := &MailConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *MailConfig) normalize() error {
	if c.Host == "" {
		return nil // mail disabled, nothing else to check
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("SMTP_PORT out of range: %d", c.Port)
	}
	if c.From == "" {
		return fmt.Errorf("SMTP_FROM or SMTP_USERNAME is required when SMTP_HOST is set")
	}
	return nil
}

// Enabled reports whether an SMTP host has been configured.
func (c *MailConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns the host:port dial address for the SMTP server.
func (c *MailConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
