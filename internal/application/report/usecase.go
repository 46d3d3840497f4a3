// Package report produces the filtered movement and maintenance reports as
// JSON rows, CSV or PDF blobs over the same filtered set.
package report

import (
	"context"

	"github.com/trackops/assettrack-api/internal/domain/entity"
	"github.com/trackops/assettrack-api/internal/domain/repository"
)

// Format of the requested report output.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	return f == FormatJSON || f == FormatCSV || f == FormatPDF
}

// ReportUseCase runs the filtered queries behind the report endpoints and
// serializes them on demand. All criteria are conjunctive; absent criteria
// are no-ops (the repositories treat zero values that way).
type ReportUseCase struct {
	movements   repository.MovementRepository
	maintenance repository.MaintenanceRepository
	pdf         PDFGenerator
}

// NewReportUseCase builds the use case.
func NewReportUseCase(movements repository.MovementRepository, maintenance repository.MaintenanceRepository, pdf PDFGenerator) *ReportUseCase {
	return &ReportUseCase{movements: movements, maintenance: maintenance, pdf: pdf}
}

// Movements returns the filtered movement rows.
func (uc *ReportUseCase) Movements(ctx context.Context, f entity.MovementFilter) ([]*entity.Movement, error) {
	return uc.movements.List(ctx, f)
}

// MovementsCSV returns the filtered movement rows as a CSV blob.
func (uc *ReportUseCase) MovementsCSV(ctx context.Context, f entity.MovementFilter) ([]byte, error) {
	rows, err := uc.movements.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return movementsCSV(rows)
}

// MovementsPDF returns the filtered movement rows as a PDF blob.
func (uc *ReportUseCase) MovementsPDF(ctx context.Context, f entity.MovementFilter) ([]byte, error) {
	rows, err := uc.movements.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.MovementsPDF(ctx, rows)
}

// Maintenance returns the filtered maintenance rows.
func (uc *ReportUseCase) Maintenance(ctx context.Context, f entity.MaintenanceFilter) ([]*entity.Maintenance, error) {
	return uc.maintenance.List(ctx, f)
}

// MaintenanceCSV returns the filtered maintenance rows as a CSV blob.
func (uc *ReportUseCase) MaintenanceCSV(ctx context.Context, f entity.MaintenanceFilter) ([]byte, error) {
	rows, err := uc.maintenance.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return maintenanceCSV(rows)
}

// MaintenancePDF returns the filtered maintenance rows as a PDF blob.
func (uc *ReportUseCase) MaintenancePDF(ctx context.Context, f entity.MaintenanceFilter) ([]byte, error) {
	rows, err := uc.maintenance.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.pdf.MaintenancePDF(ctx, rows)
}
