package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trackops/assettrack-api/internal/application/analytics"
)

// DashboardHandler handles the dashboard endpoints (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts returns the per-collection document counts.
// GET /api/dashboard/counts
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Summary returns the counts plus the assets-by-status breakdown and the
// total maintenance cost.
// GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
