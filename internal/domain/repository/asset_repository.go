package repository

import (
	"context"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// AssetRepository defines the persistence port for Asset.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	List(ctx context.Context, f entity.AssetFilter) ([]*entity.Asset, error)
	Update(ctx context.Context, id string, p entity.AssetPatch) (matched bool, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
