package dto

import "github.com/shopspring/decimal"

// DashboardCountsDTO document counts per collection.
type DashboardCountsDTO struct {
	UsersCount       int64 `json:"usersCount"`
	AssetsCount      int64 `json:"assetsCount"`
	MovementsCount   int64 `json:"movementsCount"`
	MaintenanceCount int64 `json:"maintenanceCount"`
}

// DashboardSummaryDTO counts plus the asset status breakdown and the total
// maintenance spend.
type DashboardSummaryDTO struct {
	DashboardCountsDTO
	AssetsByStatus       map[string]int64 `json:"assetsByStatus"`
	TotalMaintenanceCost decimal.Decimal  `json:"totalMaintenanceCost"`
}
