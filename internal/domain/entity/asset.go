package entity

import "time"

// Canonical asset statuses. The admin forms and the report filters of the
// legacy system disagreed on this set; these four cover both.
const (
	AssetAvailable = "available"
	AssetInUse     = "in_use"
	AssetInRepair  = "in_repair"
	AssetDisposed  = "disposed"
)

// ValidAssetStatus reports whether s is one of the canonical statuses.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetAvailable, AssetInUse, AssetInRepair, AssetDisposed:
		return true
	}
	return false
}

// Asset is a tracked inventory item.
type Asset struct {
	ID           string
	Name         string
	Type         string
	Category     string
	PurchaseDate *time.Time
	Warranty     string
	Location     string
	Condition    string
	SerialNumber string
	AssignedTo   string
	Description  string
	Status       string // available, in_use, in_repair, disposed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AssetPatch names the fields a partial update may set; nil means untouched.
type AssetPatch struct {
	Name         *string
	Type         *string
	Category     *string
	PurchaseDate *time.Time
	Warranty     *string
	Location     *string
	Condition    *string
	SerialNumber *string
	AssignedTo   *string
	Description  *string
	Status       *string
}

// AssetFilter narrows asset listings. Zero values are no-ops.
type AssetFilter struct {
	Status   string
	Type     string
	Category string
	Search   string // substring on name/serial number
}
