// Package mailer delivers confirmation emails over authenticated SMTP.
package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/rubayatk-tech/meat-donation-service/internal/domain"
	"github.com/rubayatk-tech/meat-donation-service/internal/infra"
)

// SMTPMailer sends outbox messages through a fixed mail relay over TLS.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a mailer from the configured relay identity and credential.
func New(cfg *infra.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	return &SMTPMailer{dialer: d, from: cfg.SMTPEmail}
}

// Send delivers one message. The caller owns retry and bookkeeping; any
// authentication, network, or relay rejection surfaces as the returned error.
func (m *SMTPMailer) Send(msg domain.OutboxMessage) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.Recipient)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return m.dialer.DialAndSend(gm)
}
