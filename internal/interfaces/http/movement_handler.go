package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/application/report"
	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/domain"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// MovementHandler handles the movement CRUD and report endpoints (protected).
type MovementHandler struct {
	uc     *usecase.MovementUseCase
	report *report.ReportUseCase
}

// NewMovementHandler builds the handler.
func NewMovementHandler(uc *usecase.MovementUseCase, reportUC *report.ReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, report: reportUC}
}

func movementFilterFromQuery(c *fiber.Ctx) (entity.MovementFilter, error) {
	var f entity.MovementFilter
	from, err := queryTime(c, "from")
	if err != nil {
		return f, err
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return f, err
	}
	f.From = from
	f.To = to
	f.MovementType = c.Query("movementType")
	f.Search = c.Query("search")
	if raw := c.Query("returnable"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return f, domain.Validationf("returnable must be true or false")
		}
		f.Returnable = &b
	}
	return f, nil
}

// Create godoc
// @Summary      Register asset movement
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movement data"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List movements
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from          query  string  false  "Date range start (YYYY-MM-DD or RFC3339)"
// @Param        to            query  string  false  "Date range end"
// @Param        movementType  query  string  false  "Filter by movement type"
// @Param        returnable    query  bool    false  "Filter by returnable flag"
// @Param        search        query  string  false  "Substring match on asset name or serial number"
// @Success      200           {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	f, err := movementFilterFromQuery(c)
	if err != nil {
		return writeDomainError(c, err)
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get movement by ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Movement ID"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movement not found"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update movement
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Movement ID"
// @Param        body  body  dto.UpdateMovementRequest  true  "Fields to update"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete movement
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Movement ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movement deleted"})
}

// Report godoc
// @Summary      Movement report
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        format        query  string  false  "json, csv or pdf"  default(json)
// @Param        from          query  string  false  "Date range start"
// @Param        to            query  string  false  "Date range end"
// @Param        movementType  query  string  false  "Filter by movement type"
// @Param        returnable    query  bool    false  "Filter by returnable flag"
// @Param        search        query  string  false  "Substring match on asset name or serial number"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/report [get]
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	format := c.Query("format", report.FormatJSON)
	if !report.ValidFormat(format) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format must be one of json, csv, pdf"})
	}
	f, err := movementFilterFromQuery(c)
	if err != nil {
		return writeDomainError(c, err)
	}

	switch format {
	case report.FormatCSV:
		blob, err := h.report.MovementsCSV(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.csv"`)
		return c.Send(blob)
	case report.FormatPDF:
		blob, err := h.report.MovementsPDF(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.pdf"`)
		return c.Send(blob)
	default:
		rows, err := h.report.Movements(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(rows)
	}
}
