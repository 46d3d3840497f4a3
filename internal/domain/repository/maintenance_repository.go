package repository

import (
	"context"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// MaintenanceRepository defines the persistence port for Maintenance.
// List serves both the listing endpoint and the filtered reports.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.Maintenance) error
	GetByID(ctx context.Context, id string) (*entity.Maintenance, error)
	List(ctx context.Context, f entity.MaintenanceFilter) ([]*entity.Maintenance, error)
	Update(ctx context.Context, id string, p entity.MaintenancePatch) (matched bool, err error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}
