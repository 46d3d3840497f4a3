package dto

import "time"

// CreateMovementRequest body for movement creation. AssetName and
// SerialNumber may be omitted; they are denormalized from the asset when it
// still exists.
type CreateMovementRequest struct {
	AssetID            string     `json:"assetId"`
	AssetName          string     `json:"assetName"`
	SerialNumber       string     `json:"serialNumber"`
	MovementFrom       string     `json:"movementFrom"`
	MovementTo         string     `json:"movementTo"`
	MovementType       string     `json:"movementType"`
	DispatchedBy       string     `json:"dispatchedBy"`
	ReceivedBy         string     `json:"receivedBy"`
	Date               time.Time  `json:"date"`
	Returnable         bool       `json:"returnable"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate"`
	AssetCondition     string     `json:"assetCondition"`
	Description        string     `json:"description"`
}

// UpdateMovementRequest partial update; nil fields are left untouched.
type UpdateMovementRequest struct {
	MovementFrom       *string    `json:"movementFrom"`
	MovementTo         *string    `json:"movementTo"`
	MovementType       *string    `json:"movementType"`
	DispatchedBy       *string    `json:"dispatchedBy"`
	ReceivedBy         *string    `json:"receivedBy"`
	Date               *time.Time `json:"date"`
	Returnable         *bool      `json:"returnable"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate"`
	ReturnedDateTime   *time.Time `json:"returnedDateTime"`
	AssetCondition     *string    `json:"assetCondition"`
	Description        *string    `json:"description"`
}

// MovementResponse movement representation.
type MovementResponse struct {
	ID                 string     `json:"id"`
	AssetID            string     `json:"assetId"`
	AssetName          string     `json:"assetName"`
	SerialNumber       string     `json:"serialNumber,omitempty"`
	MovementFrom       string     `json:"movementFrom"`
	MovementTo         string     `json:"movementTo"`
	MovementType       string     `json:"movementType"`
	DispatchedBy       string     `json:"dispatchedBy,omitempty"`
	ReceivedBy         string     `json:"receivedBy,omitempty"`
	Date               time.Time  `json:"date"`
	Returnable         bool       `json:"returnable"`
	ExpectedReturnDate *time.Time `json:"expectedReturnDate,omitempty"`
	ReturnedDateTime   *time.Time `json:"returnedDateTime,omitempty"`
	AssetCondition     string     `json:"assetCondition,omitempty"`
	Description        string     `json:"description,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
