package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardRepository exposes the read-only aggregate queries behind the
// dashboard endpoints.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountAssets(ctx context.Context) (int64, error)
	CountMovements(ctx context.Context) (int64, error)
	CountMaintenance(ctx context.Context) (int64, error)

	// AssetStatusBreakdown returns document counts grouped by asset status.
	AssetStatusBreakdown(ctx context.Context) (map[string]int64, error)
	// TotalMaintenanceCost sums the cost field over all maintenance records.
	TotalMaintenanceCost(ctx context.Context) (decimal.Decimal, error)
}
