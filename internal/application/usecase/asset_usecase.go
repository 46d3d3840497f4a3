package usecase

import (
	"context"
	"time"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// AssetUseCase CRUD over tracked assets.
type AssetUseCase struct {
	repo repository.AssetRepository
}

// NewAssetUseCase builds the use case.
func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

// Create validates required fields and the status enum, then persists.
// Status defaults to "available".
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.Name == "" {
		return nil, domain.Validationf("name is required")
	}
	if in.Type == "" {
		return nil, domain.Validationf("type is required")
	}
	status := in.Status
	if status == "" {
		status = entity.AssetAvailable
	}
	if !entity.ValidAssetStatus(status) {
		return nil, domain.Validationf("status must be one of available, in_use, in_repair, disposed")
	}
	now := time.Now()
	asset := &entity.Asset{
		Name:         in.Name,
		Type:         in.Type,
		Category:     in.Category,
		PurchaseDate: in.PurchaseDate,
		Warranty:     in.Warranty,
		Location:     in.Location,
		Condition:    in.Condition,
		SerialNumber: in.SerialNumber,
		AssignedTo:   in.AssignedTo,
		Description:  in.Description,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

// GetByID returns the asset or (nil, nil) when absent.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

// List returns all assets narrowed by the filter.
func (uc *AssetUseCase) List(ctx context.Context, f entity.AssetFilter) ([]dto.AssetResponse, error) {
	assets, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, *assetResponse(a))
	}
	return out, nil
}

// Update applies a partial merge; ErrNotFound when no document matched.
func (uc *AssetUseCase) Update(ctx context.Context, id string, in dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if in.Status != nil && !entity.ValidAssetStatus(*in.Status) {
		return nil, domain.Validationf("status must be one of available, in_use, in_repair, disposed")
	}
	patch := entity.AssetPatch{
		Name:         in.Name,
		Type:         in.Type,
		Category:     in.Category,
		PurchaseDate: in.PurchaseDate,
		Warranty:     in.Warranty,
		Location:     in.Location,
		Condition:    in.Condition,
		SerialNumber: in.SerialNumber,
		AssignedTo:   in.AssignedTo,
		Description:  in.Description,
		Status:       in.Status,
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

// Delete removes the asset; ErrNotFound when no document matched. Movements
// and maintenance records referencing it are left as-is (no cascade).
func (uc *AssetUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func assetResponse(a *entity.Asset) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:           a.ID,
		Name:         a.Name,
		Type:         a.Type,
		Category:     a.Category,
		PurchaseDate: a.PurchaseDate,
		Warranty:     a.Warranty,
		Location:     a.Location,
		Condition:    a.Condition,
		SerialNumber: a.SerialNumber,
		AssignedTo:   a.AssignedTo,
		Description:  a.Description,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
