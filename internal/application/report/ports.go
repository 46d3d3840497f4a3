package report

import (
	"context"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// PDFGenerator renders a filtered record set as a downloadable PDF table.
// Implemented with Maroto in infrastructure/pdf.
type PDFGenerator interface {
	MovementsPDF(ctx context.Context, rows []*entity.Movement) ([]byte, error)
	MaintenancePDF(ctx context.Context, rows []*entity.Maintenance) ([]byte, error)
}
