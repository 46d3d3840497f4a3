// Package mail implements the auth.Mailer port over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/trackops/assettrack-api/pkg/config"
)

// SMTPMailer sends password-reset mail through an SMTP relay.
type SMTPMailer struct {
	cfg    config.MailConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer builds the mailer from the mail configuration.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	return &SMTPMailer{cfg: cfg, dialer: dialer}
}

// SendPasswordReset mails the reset link to the account address. The dial
// blocks; context cancellation is not propagated into the SMTP session
// (gomail has no context API), which matches the synchronous reset flow.
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset request")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires in one hour. If you did not request this, ignore this mail.</p>`,
		resetLink,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send password reset: %w", err)
	}
	return nil
}
