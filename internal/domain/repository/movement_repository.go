package repository

import (
	"context"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// MovementRepository defines the persistence port for Movement.
// List serves both the listing endpoint and the filtered reports.
type MovementRepository interface {
	Create(ctx context.Context, mv *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, f entity.MovementFilter) ([]*entity.Movement, error)
	Update(ctx context.Context, id string, p entity.MovementPatch) (matched bool, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
