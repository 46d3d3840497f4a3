package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackops/assettrack-api/internal/application/analytics"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

type fakeDashboardRepo struct {
	users, assets, movements, maintenance int64
	breakdown                             map[string]int64
	totalCost                             decimal.Decimal
	countErr                              error
}

func (r *fakeDashboardRepo) CountUsers(_ context.Context) (int64, error) {
	return r.users, r.countErr
}
func (r *fakeDashboardRepo) CountAssets(_ context.Context) (int64, error) {
	return r.assets, nil
}
func (r *fakeDashboardRepo) CountMovements(_ context.Context) (int64, error) {
	return r.movements, nil
}
func (r *fakeDashboardRepo) CountMaintenance(_ context.Context) (int64, error) {
	return r.maintenance, nil
}
func (r *fakeDashboardRepo) AssetStatusBreakdown(_ context.Context) (map[string]int64, error) {
	return r.breakdown, nil
}
func (r *fakeDashboardRepo) TotalMaintenanceCost(_ context.Context) (decimal.Decimal, error) {
	return r.totalCost, nil
}

func TestCounts(t *testing.T) {
	repo := &fakeDashboardRepo{users: 4, assets: 120, movements: 37, maintenance: 9}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.UsersCount)
	assert.Equal(t, int64(120), out.AssetsCount)
	assert.Equal(t, int64(37), out.MovementsCount)
	assert.Equal(t, int64(9), out.MaintenanceCount)
}

func TestCounts_PropagatesError(t *testing.T) {
	repo := &fakeDashboardRepo{countErr: errors.New("connection reset")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.Counts(context.Background())
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	repo := &fakeDashboardRepo{
		users: 2, assets: 10, movements: 5, maintenance: 3,
		breakdown: map[string]int64{
			entity.AssetAvailable: 6,
			entity.AssetInUse:     3,
			entity.AssetInRepair:  1,
		},
		totalCost: decimal.RequireFromString("420.50"),
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.AssetsCount)
	assert.Equal(t, int64(6), out.AssetsByStatus[entity.AssetAvailable])
	assert.True(t, out.TotalMaintenanceCost.Equal(decimal.RequireFromString("420.50")))
}
