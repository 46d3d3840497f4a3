package auth

import "context"

// Mailer is the outbound port for password-reset mail. Implemented by the
// SMTP client in infrastructure/mail; a fake stands in for it in tests.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}
