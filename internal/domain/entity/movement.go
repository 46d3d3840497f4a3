package entity

import "time"

// Movement types.
const (
	MovementInsideBuilding  = "inside_building"
	MovementOutsideBuilding = "outside_building"
)

// ValidMovementType reports whether t is one of the enumerated types.
func ValidMovementType(t string) bool {
	return t == MovementInsideBuilding || t == MovementOutsideBuilding
}

// Movement is a logged relocation event for a tracked asset between two
// locations. AssetName and SerialNumber are denormalized from the asset at
// creation time; there is no referential integrity back to the asset.
type Movement struct {
	ID                 string
	AssetID            string
	AssetName          string
	SerialNumber       string
	MovementFrom       string
	MovementTo         string
	MovementType       string // inside_building, outside_building
	DispatchedBy       string
	ReceivedBy         string
	Date               time.Time
	Returnable         bool
	ExpectedReturnDate *time.Time // required iff Returnable
	ReturnedDateTime   *time.Time
	AssetCondition     string
	Description        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MovementPatch names the fields a partial update may set; nil means untouched.
type MovementPatch struct {
	MovementFrom       *string
	MovementTo         *string
	MovementType       *string
	DispatchedBy       *string
	ReceivedBy         *string
	Date               *time.Time
	Returnable         *bool
	ExpectedReturnDate *time.Time
	ReturnedDateTime   *time.Time
	AssetCondition     *string
	Description        *string
}

// MovementFilter narrows movement listings and reports. All criteria are
// conjunctive; zero values are no-ops.
type MovementFilter struct {
	From         *time.Time // inclusive lower bound on Date
	To           *time.Time // inclusive upper bound on Date
	MovementType string
	Returnable   *bool
	Search       string // substring on asset name/serial number
}
