// Package analytics contains the read-only use cases behind the dashboard
// endpoints.
package analytics

import (
	"context"
	"fmt"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// DashboardUseCase computes collection counts and the asset/maintenance
// summary for the dashboard.
//
// Data source: DashboardRepository (read-only queries). It never touches the
// collections directly; everything is delegated to the repository.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Counts returns the document count per collection.
//
// The four counts run in parallel; the first error wins.
func (uc *DashboardUseCase) Counts(ctx context.Context) (*dto.DashboardCountsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	usersCh := make(chan countResult, 1)
	assetsCh := make(chan countResult, 1)
	movementsCh := make(chan countResult, 1)
	maintCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountAssets(ctx)
		assetsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountMovements(ctx)
		movementsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountMaintenance(ctx)
		maintCh <- countResult{n, err}
	}()

	users := <-usersCh
	assets := <-assetsCh
	movements := <-movementsCh
	maint := <-maintCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: count users: %w", users.err)
	}
	if assets.err != nil {
		return nil, fmt.Errorf("dashboard: count assets: %w", assets.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: count movements: %w", movements.err)
	}
	if maint.err != nil {
		return nil, fmt.Errorf("dashboard: count maintenance: %w", maint.err)
	}

	return &dto.DashboardCountsDTO{
		UsersCount:       users.n,
		AssetsCount:      assets.n,
		MovementsCount:   movements.n,
		MaintenanceCount: maint.n,
	}, nil
}

// Summary returns the counts plus the assets-by-status breakdown and the
// total maintenance cost.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	counts, err := uc.Counts(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.repo.AssetStatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: asset status breakdown: %w", err)
	}
	totalCost, err := uc.repo.TotalMaintenanceCost(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total maintenance cost: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		DashboardCountsDTO:   *counts,
		AssetsByStatus:       breakdown,
		TotalMaintenanceCost: totalCost,
	}, nil
}
