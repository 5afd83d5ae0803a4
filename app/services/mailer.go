package services

import (
	"fmt"
	"net/smtp"
)

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Mailer struct {
	config MailerConfig
}

// NewMailer returns nil when SMTP is not configured, which disables the
// staff email copy of order notifications.
func NewMailer(cfg MailerConfig) *Mailer {
	if cfg.Host == "" || cfg.From == "" {
		return nil
	}
	return &Mailer{config: cfg}
}

func (m *Mailer) SendPlainEmail(to, subject, body string) error {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n",
		m.config.From, to, subject,
	)
	msg := headers + "\r\n" + body

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
