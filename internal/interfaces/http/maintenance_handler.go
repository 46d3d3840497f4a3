package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trackops/assettrack-api/internal/application/dto"
	"github.com/trackops/assettrack-api/internal/application/report"
	"github.com/trackops/assettrack-api/internal/application/usecase"
	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// MaintenanceHandler handles the maintenance CRUD and report endpoints
// (protected).
type MaintenanceHandler struct {
	uc     *usecase.MaintenanceUseCase
	report *report.ReportUseCase
}

// NewMaintenanceHandler builds the handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase, reportUC *report.ReportUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc, report: reportUC}
}

func maintenanceFilterFromQuery(c *fiber.Ctx) (entity.MaintenanceFilter, error) {
	var f entity.MaintenanceFilter
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
	f.MaintenanceType = c.Query("maintenanceType")
	f.Status = c.Query("status")
	f.PerformedBy = c.Query("performedBy")
	f.Search = c.Query("search")
	return f, nil
}

// Create godoc
// @Summary      Create maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "Maintenance data"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
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
// @Summary      List maintenance records
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        from             query  string  false  "Scheduled date range start (YYYY-MM-DD or RFC3339)"
// @Param        to               query  string  false  "Scheduled date range end"
// @Param        maintenanceType  query  string  false  "Filter by maintenance type"
// @Param        status           query  string  false  "Filter by status"
// @Param        performedBy      query  string  false  "Filter by technician"
// @Param        search           query  string  false  "Substring match on asset name or description"
// @Success      200              {array}  dto.MaintenanceResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	f, err := maintenanceFilterFromQuery(c)
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
// @Summary      Get maintenance record by ID
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Success      200  {object}  dto.MaintenanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "maintenance record not found"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Record ID"
// @Param        body  body  dto.UpdateMaintenanceRequest  true  "Fields to update"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateMaintenanceRequest
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
// @Summary      Delete maintenance record
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Record ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "maintenance record deleted"})
}

// Records godoc
// @Summary      Maintenance report
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        format           query  string  false  "json, csv or pdf"  default(json)
// @Param        from             query  string  false  "Scheduled date range start"
// @Param        to               query  string  false  "Scheduled date range end"
// @Param        maintenanceType  query  string  false  "Filter by maintenance type"
// @Param        status           query  string  false  "Filter by status"
// @Param        performedBy      query  string  false  "Filter by technician"
// @Param        search           query  string  false  "Substring match on asset name or description"
// @Success      200  {array}  dto.MaintenanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/maintenance/records [get]
func (h *MaintenanceHandler) Records(c *fiber.Ctx) error {
	format := c.Query("format", report.FormatJSON)
	if !report.ValidFormat(format) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format must be one of json, csv, pdf"})
	}
	f, err := maintenanceFilterFromQuery(c)
	if err != nil {
		return writeDomainError(c, err)
	}

	switch format {
	case report.FormatCSV:
		blob, err := h.report.MaintenanceCSV(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="maintenance.csv"`)
		return c.Send(blob)
	case report.FormatPDF:
		blob, err := h.report.MaintenancePDF(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="maintenance.pdf"`)
		return c.Send(blob)
	default:
		rows, err := h.report.Maintenance(c.Context(), f)
		if err != nil {
			return writeDomainError(c, err)
		}
		return c.JSON(rows)
	}
}
