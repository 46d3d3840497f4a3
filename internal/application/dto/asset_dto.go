package dto

import "time"

// CreateAssetRequest body for asset creation.
type CreateAssetRequest struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Category     string     `json:"category"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	Warranty     string     `json:"warranty"`
	Location     string     `json:"location"`
	Condition    string     `json:"condition"`
	SerialNumber string     `json:"serialNumber"`
	AssignedTo   string     `json:"assignedTo"`
	Description  string     `json:"description"`
	Status       string     `json:"status"` // defaults to "available" when empty
}

// UpdateAssetRequest partial update; nil fields are left untouched.
type UpdateAssetRequest struct {
	Name         *string    `json:"name"`
	Type         *string    `json:"type"`
	Category     *string    `json:"category"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	Warranty     *string    `json:"warranty"`
	Location     *string    `json:"location"`
	Condition    *string    `json:"condition"`
	SerialNumber *string    `json:"serialNumber"`
	AssignedTo   *string    `json:"assignedTo"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"`
}

// AssetResponse asset representation.
type AssetResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Category     string     `json:"category"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
	Warranty     string     `json:"warranty,omitempty"`
	Location     string     `json:"location,omitempty"`
	Condition    string     `json:"condition,omitempty"`
	SerialNumber string     `json:"serialNumber,omitempty"`
	AssignedTo   string     `json:"assignedTo,omitempty"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
