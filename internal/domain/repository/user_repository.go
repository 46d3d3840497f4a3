package repository

import (
	"context"
	"time"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// UserRepository defines the persistence port for User (DIP).
// Get methods return (nil, nil) when no document matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, f entity.UserFilter) ([]*entity.User, error)
	// Update applies a partial merge; matched is false when no document matched.
	Update(ctx context.Context, id string, p entity.UserPatch) (matched bool, err error)
	// Delete removes by id; deleted is false when no document matched.
	Delete(ctx context.Context, id string) (deleted bool, err error)

	// SetResetToken stores a pending reset token with its expiry.
	SetResetToken(ctx context.Context, id, token string, expiry time.Time) error
	// GetByResetToken matches email + token + unexpired expiry, or (nil, nil).
	GetByResetToken(ctx context.Context, email, token string, now time.Time) (*entity.User, error)
	// ResetPassword replaces the hash and clears the token and expiry fields.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}
