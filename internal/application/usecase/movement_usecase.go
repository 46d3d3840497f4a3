package usecase

import (
	"context"
	"time"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// MovementUseCase CRUD over asset movements.
type MovementUseCase struct {
	repo      repository.MovementRepository
	assetRepo repository.AssetRepository
}

// NewMovementUseCase builds the use case. assetRepo is used only to
// denormalize the asset name/serial onto new movements.
func NewMovementUseCase(repo repository.MovementRepository, assetRepo repository.AssetRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo, assetRepo: assetRepo}
}

// Create validates required fields, the type enum and the returnable
// invariant (returnable movements need an expected return date), then
// persists. Asset name/serial fall back to the referenced asset when the
// request leaves them empty and the asset still exists.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.AssetID == "" {
		return nil, domain.Validationf("assetId is required")
	}
	if in.MovementFrom == "" || in.MovementTo == "" {
		return nil, domain.Validationf("movementFrom and movementTo are required")
	}
	if !entity.ValidMovementType(in.MovementType) {
		return nil, domain.Validationf("movementType must be one of inside_building, outside_building")
	}
	if in.Date.IsZero() {
		return nil, domain.Validationf("date is required")
	}
	if in.Returnable && in.ExpectedReturnDate == nil {
		return nil, domain.Validationf("expectedReturnDate is required for returnable movements")
	}

	assetName, serial := in.AssetName, in.SerialNumber
	if assetName == "" || serial == "" {
		// Best effort: the asset may already be gone, that is not an error.
		if asset, err := uc.assetRepo.GetByID(ctx, in.AssetID); err == nil && asset != nil {
			if assetName == "" {
				assetName = asset.Name
			}
			if serial == "" {
				serial = asset.SerialNumber
			}
		}
	}

	now := time.Now()
	mv := &entity.Movement{
		AssetID:            in.AssetID,
		AssetName:          assetName,
		SerialNumber:       serial,
		MovementFrom:       in.MovementFrom,
		MovementTo:         in.MovementTo,
		MovementType:       in.MovementType,
		DispatchedBy:       in.DispatchedBy,
		ReceivedBy:         in.ReceivedBy,
		Date:               in.Date,
		Returnable:         in.Returnable,
		ExpectedReturnDate: in.ExpectedReturnDate,
		AssetCondition:     in.AssetCondition,
		Description:        in.Description,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, mv); err != nil {
		return nil, err
	}
	return movementResponse(mv), nil
}

// GetByID returns the movement or (nil, nil) when absent.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	mv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return movementResponse(mv), nil
}

// List returns all movements narrowed by the filter.
func (uc *MovementUseCase) List(ctx context.Context, f entity.MovementFilter) ([]dto.MovementResponse, error) {
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(rows))
	for _, mv := range rows {
		out = append(out, *movementResponse(mv))
	}
	return out, nil
}

// Update applies a partial merge; ErrNotFound when no document matched.
// Setting returnable=true in the same request requires expectedReturnDate.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if in.MovementType != nil && !entity.ValidMovementType(*in.MovementType) {
		return nil, domain.Validationf("movementType must be one of inside_building, outside_building")
	}
	if in.Returnable != nil && *in.Returnable && in.ExpectedReturnDate == nil {
		return nil, domain.Validationf("expectedReturnDate is required for returnable movements")
	}
	patch := entity.MovementPatch{
		MovementFrom:       in.MovementFrom,
		MovementTo:         in.MovementTo,
		MovementType:       in.MovementType,
		DispatchedBy:       in.DispatchedBy,
		ReceivedBy:         in.ReceivedBy,
		Date:               in.Date,
		Returnable:         in.Returnable,
		ExpectedReturnDate: in.ExpectedReturnDate,
		ReturnedDateTime:   in.ReturnedDateTime,
		AssetCondition:     in.AssetCondition,
		Description:        in.Description,
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

// Delete removes the movement; ErrNotFound when no document matched.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func movementResponse(mv *entity.Movement) *dto.MovementResponse {
	if mv == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                 mv.ID,
		AssetID:            mv.AssetID,
		AssetName:          mv.AssetName,
		SerialNumber:       mv.SerialNumber,
		MovementFrom:       mv.MovementFrom,
		MovementTo:         mv.MovementTo,
		MovementType:       mv.MovementType,
		DispatchedBy:       mv.DispatchedBy,
		ReceivedBy:         mv.ReceivedBy,
		Date:               mv.Date,
		Returnable:         mv.Returnable,
		ExpectedReturnDate: mv.ExpectedReturnDate,
		ReturnedDateTime:   mv.ReturnedDateTime,
		AssetCondition:     mv.AssetCondition,
		Description:        mv.Description,
		CreatedAt:          mv.CreatedAt,
		UpdatedAt:          mv.UpdatedAt,
	}
}
