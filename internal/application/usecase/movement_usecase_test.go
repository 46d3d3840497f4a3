package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: map[string]*entity.Movement{}}
}

func (r *fakeMovementRepo) Create(_ context.Context, mv *entity.Movement) error {
	mv.ID = uuid.NewString()
	cp := *mv
	r.movements[mv.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	mv, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *mv
	return &cp, nil
}

func (r *fakeMovementRepo) List(_ context.Context, _ entity.MovementFilter) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(r.movements))
	for _, mv := range r.movements {
		cp := *mv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) Update(_ context.Context, id string, p entity.MovementPatch) (bool, error) {
	mv, ok := r.movements[id]
	if !ok {
		return false, nil
	}
	if p.Returnable != nil {
		mv.Returnable = *p.Returnable
	}
	if p.ExpectedReturnDate != nil {
		mv.ExpectedReturnDate = p.ExpectedReturnDate
	}
	if p.ReturnedDateTime != nil {
		mv.ReturnedDateTime = p.ReturnedDateTime
	}
	if p.Description != nil {
		mv.Description = *p.Description
	}
	return true, nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.movements[id]; !ok {
		return false, nil
	}
	delete(r.movements, id)
	return true, nil
}

type fakeAssetRepo struct {
	assets map[string]*entity.Asset
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[string]*entity.Asset{}}
}

func (r *fakeAssetRepo) Create(_ context.Context, a *entity.Asset) error {
	a.ID = uuid.NewString()
	cp := *a
	r.assets[a.ID] = &cp
	return nil
}

func (r *fakeAssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAssetRepo) List(_ context.Context, _ entity.AssetFilter) ([]*entity.Asset, error) {
	out := make([]*entity.Asset, 0, len(r.assets))
	for _, a := range r.assets {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAssetRepo) Update(_ context.Context, id string, _ entity.AssetPatch) (bool, error) {
	_, ok := r.assets[id]
	return ok, nil
}

func (r *fakeAssetRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.assets[id]; !ok {
		return false, nil
	}
	delete(r.assets, id)
	return true, nil
}

func newMovementUC() (*usecase.MovementUseCase, *fakeMovementRepo, *fakeAssetRepo) {
	movRepo := newFakeMovementRepo()
	assetRepo := newFakeAssetRepo()
	return usecase.NewMovementUseCase(movRepo, assetRepo), movRepo, assetRepo
}

func validCreateMovement(assetID string) dto.CreateMovementRequest {
	return dto.CreateMovementRequest{
		AssetID:      assetID,
		MovementFrom: "Warehouse A",
		MovementTo:   "Office 3",
		MovementType: entity.MovementInsideBuilding,
		Date:         time.Now(),
	}
}

func TestMovementCreate_DenormalizesAssetFields(t *testing.T) {
	uc, _, assetRepo := newMovementUC()
	asset := &entity.Asset{Name: "Dell Latitude", SerialNumber: "SN-123", Status: entity.AssetAvailable}
	require.NoError(t, assetRepo.Create(context.Background(), asset))

	out, err := uc.Create(context.Background(), validCreateMovement(asset.ID))
	require.NoError(t, err)
	assert.Equal(t, "Dell Latitude", out.AssetName)
	assert.Equal(t, "SN-123", out.SerialNumber)
}

func TestMovementCreate_MissingAssetStillSucceeds(t *testing.T) {
	uc, _, _ := newMovementUC()
	out, err := uc.Create(context.Background(), validCreateMovement(uuid.NewString()))
	require.NoError(t, err)
	assert.Empty(t, out.AssetName)
}

func TestMovementCreate_RejectsUnknownType(t *testing.T) {
	uc, _, _ := newMovementUC()
	in := validCreateMovement(uuid.NewString())
	in.MovementType = "teleport"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementCreate_ReturnableNeedsExpectedReturnDate(t *testing.T) {
	uc, _, _ := newMovementUC()
	in := validCreateMovement(uuid.NewString())
	in.Returnable = true
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ret := time.Now().Add(48 * time.Hour)
	in.ExpectedReturnDate = &ret
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Returnable)
}

func TestMovementUpdate_ReturnableNeedsExpectedReturnDate(t *testing.T) {
	uc, _, _ := newMovementUC()
	out, err := uc.Create(context.Background(), validCreateMovement(uuid.NewString()))
	require.NoError(t, err)

	returnable := true
	_, err = uc.Update(context.Background(), out.ID, dto.UpdateMovementRequest{Returnable: &returnable})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ret := time.Now().Add(24 * time.Hour)
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateMovementRequest{
		Returnable:         &returnable,
		ExpectedReturnDate: &ret,
	})
	require.NoError(t, err)
	assert.True(t, updated.Returnable)
}

func TestMovementUpdate_NotFound(t *testing.T) {
	uc, _, _ := newMovementUC()
	desc := "moved again"
	_, err := uc.Update(context.Background(), uuid.NewString(), dto.UpdateMovementRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementDelete_NotFound(t *testing.T) {
	uc, _, _ := newMovementUC()
	err := uc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
