package usecase

import (
	"context"
	"time"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// MaintenanceUseCase CRUD over maintenance records.
type MaintenanceUseCase struct {
	repo      repository.MaintenanceRepository
	assetRepo repository.AssetRepository
}

// NewMaintenanceUseCase builds the use case.
func NewMaintenanceUseCase(repo repository.MaintenanceRepository, assetRepo repository.AssetRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, assetRepo: assetRepo}
}

// Create validates required fields and both enums, then persists. Status
// defaults to "scheduled"; a negative cost is rejected.
func (uc *MaintenanceUseCase) Create(ctx context.Context, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if in.AssetID == "" {
		return nil, domain.Validationf("assetId is required")
	}
	if !entity.ValidMaintenanceType(in.MaintenanceType) {
		return nil, domain.Validationf("maintenanceType must be one of preventive, corrective")
	}
	if in.ScheduledDate.IsZero() {
		return nil, domain.Validationf("scheduledDate is required")
	}
	status := in.Status
	if status == "" {
		status = entity.MaintenanceScheduled
	}
	if !entity.ValidMaintenanceStatus(status) {
		return nil, domain.Validationf("status must be one of scheduled, in_progress, completed")
	}
	if in.Cost.IsNegative() {
		return nil, domain.Validationf("cost must not be negative")
	}

	assetName := in.AssetName
	if assetName == "" {
		if asset, err := uc.assetRepo.GetByID(ctx, in.AssetID); err == nil && asset != nil {
			assetName = asset.Name
		}
	}

	now := time.Now()
	m := &entity.Maintenance{
		AssetID:         in.AssetID,
		AssetName:       assetName,
		MaintenanceType: in.MaintenanceType,
		ScheduledDate:   in.ScheduledDate,
		Status:          status,
		PerformedBy:     in.PerformedBy,
		Cost:            in.Cost,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return maintenanceResponse(m), nil
}

// GetByID returns the record or (nil, nil) when absent.
func (uc *MaintenanceUseCase) GetByID(ctx context.Context, id string) (*dto.MaintenanceResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return maintenanceResponse(m), nil
}

// List returns all records narrowed by the filter.
func (uc *MaintenanceUseCase) List(ctx context.Context, f entity.MaintenanceFilter) ([]dto.MaintenanceResponse, error) {
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaintenanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, *maintenanceResponse(m))
	}
	return out, nil
}

// Update applies a partial merge; ErrNotFound when no document matched.
func (uc *MaintenanceUseCase) Update(ctx context.Context, id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if in.MaintenanceType != nil && !entity.ValidMaintenanceType(*in.MaintenanceType) {
		return nil, domain.Validationf("maintenanceType must be one of preventive, corrective")
	}
	if in.Status != nil && !entity.ValidMaintenanceStatus(*in.Status) {
		return nil, domain.Validationf("status must be one of scheduled, in_progress, completed")
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, domain.Validationf("cost must not be negative")
	}
	patch := entity.MaintenancePatch{
		MaintenanceType: in.MaintenanceType,
		ScheduledDate:   in.ScheduledDate,
		Status:          in.Status,
		PerformedBy:     in.PerformedBy,
		Cost:            in.Cost,
		Description:     in.Description,
	}
	matched, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, domain.ErrNotFound
	}
	return uc.GetByID(ctx, id)
}

// Delete removes the record; ErrNotFound when no document matched.
func (uc *MaintenanceUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func maintenanceResponse(m *entity.Maintenance) *dto.MaintenanceResponse {
	if m == nil {
		return nil
	}
	return &dto.MaintenanceResponse{
		ID:              m.ID,
		AssetID:         m.AssetID,
		AssetName:       m.AssetName,
		MaintenanceType: m.MaintenanceType,
		ScheduledDate:   m.ScheduledDate,
		Status:          m.Status,
		PerformedBy:     m.PerformedBy,
		Cost:            m.Cost,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
