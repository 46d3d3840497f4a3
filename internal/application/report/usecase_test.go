package report_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackops/assettrack-api/internal/application/report"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// fakeMovementRepo returns canned rows and records the filter it was given.
type fakeMovementRepo struct {
	rows       []*entity.Movement
	lastFilter entity.MovementFilter
}

func (r *fakeMovementRepo) Create(_ context.Context, _ *entity.Movement) error { return nil }
func (r *fakeMovementRepo) GetByID(_ context.Context, _ string) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) List(_ context.Context, f entity.MovementFilter) ([]*entity.Movement, error) {
	r.lastFilter = f
	return r.rows, nil
}
func (r *fakeMovementRepo) Update(_ context.Context, _ string, _ entity.MovementPatch) (bool, error) {
	return false, nil
}
func (r *fakeMovementRepo) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

type fakeMaintenanceRepo struct {
	rows []*entity.Maintenance
}

func (r *fakeMaintenanceRepo) Create(_ context.Context, _ *entity.Maintenance) error { return nil }
func (r *fakeMaintenanceRepo) GetByID(_ context.Context, _ string) (*entity.Maintenance, error) {
	return nil, nil
}
func (r *fakeMaintenanceRepo) List(_ context.Context, _ entity.MaintenanceFilter) ([]*entity.Maintenance, error) {
	return r.rows, nil
}
func (r *fakeMaintenanceRepo) Update(_ context.Context, _ string, _ entity.MaintenancePatch) (bool, error) {
	return false, nil
}
func (r *fakeMaintenanceRepo) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

// fakePDF returns a marker blob so the tests can tell which path ran.
type fakePDF struct{}

func (fakePDF) MovementsPDF(_ context.Context, rows []*entity.Movement) ([]byte, error) {
	return []byte("pdf-movements"), nil
}
func (fakePDF) MaintenancePDF(_ context.Context, rows []*entity.Maintenance) ([]byte, error) {
	return []byte("pdf-maintenance"), nil
}

func sampleMovement() *entity.Movement {
	ret := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	return &entity.Movement{
		ID:                 "m1",
		AssetID:            "a1",
		AssetName:          "Dell Latitude",
		SerialNumber:       "SN-123",
		MovementFrom:       "Warehouse A",
		MovementTo:         "Office 3",
		MovementType:       entity.MovementOutsideBuilding,
		Date:               time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		Returnable:         true,
		ExpectedReturnDate: &ret,
	}
}

func sampleMaintenance() *entity.Maintenance {
	return &entity.Maintenance{
		ID:              "r1",
		AssetID:         "a1",
		AssetName:       "Dell Latitude",
		MaintenanceType: entity.MaintenancePreventive,
		ScheduledDate:   time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC),
		Status:          entity.MaintenanceScheduled,
		PerformedBy:     "ACME Services",
		Cost:            decimal.RequireFromString("149.90"),
	}
}

func TestValidFormat(t *testing.T) {
	assert.True(t, report.ValidFormat(report.FormatJSON))
	assert.True(t, report.ValidFormat(report.FormatCSV))
	assert.True(t, report.ValidFormat(report.FormatPDF))
	assert.False(t, report.ValidFormat("xlsx"))
	assert.False(t, report.ValidFormat(""))
}

func TestMovementsCSV_HeaderAndRow(t *testing.T) {
	movRepo := &fakeMovementRepo{rows: []*entity.Movement{sampleMovement()}}
	uc := report.NewReportUseCase(movRepo, &fakeMaintenanceRepo{}, fakePDF{})

	blob, err := uc.MovementsCSV(context.Background(), entity.MovementFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(blob))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Asset", records[0][0])
	assert.Equal(t, "Dell Latitude", records[1][0])
	assert.Equal(t, "SN-123", records[1][1])
	assert.Equal(t, "outside_building", records[1][4])
	assert.Equal(t, "2026-09-01 09:30", records[1][7])
	assert.Equal(t, "true", records[1][8])
	assert.Equal(t, "2026-09-10 12:00", records[1][9])
}

func TestMaintenanceCSV_CostWithTwoDecimals(t *testing.T) {
	maintRepo := &fakeMaintenanceRepo{rows: []*entity.Maintenance{sampleMaintenance()}}
	uc := report.NewReportUseCase(&fakeMovementRepo{}, maintRepo, fakePDF{})

	blob, err := uc.MaintenanceCSV(context.Background(), entity.MaintenanceFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(blob))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "149.90", records[1][5])
	assert.Equal(t, "preventive", records[1][1])
}

func TestCSV_EmptySetStillHasHeader(t *testing.T) {
	uc := report.NewReportUseCase(&fakeMovementRepo{}, &fakeMaintenanceRepo{}, fakePDF{})

	blob, err := uc.MovementsCSV(context.Background(), entity.MovementFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(blob))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestMovementsPDF_DelegatesToGenerator(t *testing.T) {
	movRepo := &fakeMovementRepo{rows: []*entity.Movement{sampleMovement()}}
	uc := report.NewReportUseCase(movRepo, &fakeMaintenanceRepo{}, fakePDF{})

	blob, err := uc.MovementsPDF(context.Background(), entity.MovementFilter{})
	require.NoError(t, err)
	assert.Equal(t, "pdf-movements", string(blob))
}

func TestMovements_PassesFilterThrough(t *testing.T) {
	movRepo := &fakeMovementRepo{}
	uc := report.NewReportUseCase(movRepo, &fakeMaintenanceRepo{}, fakePDF{})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	returnable := true
	f := entity.MovementFilter{From: &from, MovementType: entity.MovementInsideBuilding, Returnable: &returnable}
	_, err := uc.Movements(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, f, movRepo.lastFilter)
}
