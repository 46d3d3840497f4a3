package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest body for maintenance record creation.
type CreateMaintenanceRequest struct {
	AssetID         string          `json:"assetId"`
	AssetName       string          `json:"assetName"`
	MaintenanceType string          `json:"maintenanceType"`
	ScheduledDate   time.Time       `json:"scheduledDate"`
	Status          string          `json:"status"` // defaults to "scheduled" when empty
	PerformedBy     string          `json:"performedBy"`
	Cost            decimal.Decimal `json:"cost"`
	Description     string          `json:"description"`
}

// UpdateMaintenanceRequest partial update; nil fields are left untouched.
type UpdateMaintenanceRequest struct {
	MaintenanceType *string          `json:"maintenanceType"`
	ScheduledDate   *time.Time       `json:"scheduledDate"`
	Status          *string          `json:"status"`
	PerformedBy     *string          `json:"performedBy"`
	Cost            *decimal.Decimal `json:"cost"`
	Description     *string          `json:"description"`
}

// MaintenanceResponse maintenance record representation.
type MaintenanceResponse struct {
	ID              string          `json:"id"`
	AssetID         string          `json:"assetId"`
	AssetName       string          `json:"assetName"`
	MaintenanceType string          `json:"maintenanceType"`
	ScheduledDate   time.Time       `json:"scheduledDate"`
	Status          string          `json:"status"`
	PerformedBy     string          `json:"performedBy,omitempty"`
	Cost            decimal.Decimal `json:"cost"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
