package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maintenance types.
const (
	MaintenancePreventive = "preventive"
	MaintenanceCorrective = "corrective"
)

// Maintenance statuses.
const (
	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

// ValidMaintenanceType reports whether t is one of the enumerated types.
func ValidMaintenanceType(t string) bool {
	return t == MaintenancePreventive || t == MaintenanceCorrective
}

// ValidMaintenanceStatus reports whether s is one of the enumerated statuses.
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

// Maintenance is a scheduled or completed service event for a tracked asset.
type Maintenance struct {
	ID              string
	AssetID         string
	AssetName       string // denormalized from the asset at creation time
	MaintenanceType string // preventive, corrective
	ScheduledDate   time.Time
	Status          string // scheduled, in_progress, completed
	PerformedBy     string
	Cost            decimal.Decimal
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaintenancePatch names the fields a partial update may set; nil means untouched.
type MaintenancePatch struct {
	MaintenanceType *string
	ScheduledDate   *time.Time
	Status          *string
	PerformedBy     *string
	Cost            *decimal.Decimal
	Description     *string
}

// MaintenanceFilter narrows maintenance listings and reports. All criteria
// are conjunctive; zero values are no-ops.
type MaintenanceFilter struct {
	From            *time.Time // inclusive lower bound on ScheduledDate
	To              *time.Time // inclusive upper bound on ScheduledDate
	MaintenanceType string
	Status          string
	PerformedBy     string
	Search          string // substring on asset name/description
}
