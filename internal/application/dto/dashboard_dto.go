package dto

import "github.com/shopspring/decimal"

// LowStockProductDTO producto bajo su stock mínimo (widget del dashboard).
type LowStockProductDTO struct {
	ProductID    string          `json:"product_id"`
	InternalCode string          `json:"internal_code"`
	Name         string          `json:"name"`
	TotalStock   decimal.Decimal `json:"total_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
}

// DashboardSummaryDTO resumen general del inventario.
type DashboardSummaryDTO struct {
	TotalProducts   int                  `json:"total_products"`
	TotalInventory  decimal.Decimal      `json:"total_inventory"`
	LowStock        []LowStockProductDTO `json:"low_stock"`
	RecentBatches   []BatchResponse      `json:"recent_batches"`
	WarehouseAreas  []AreaResponse       `json:"warehouse_areas"`
}

// SearchResultDTO resultado de la búsqueda global.
type SearchResultDTO struct {
	Query          string                  `json:"query"`
	Products       []ProductResponse       `json:"products"`
	Batches        []BatchResponse         `json:"batches"`
	ShelfLocations []ShelfLocationResponse `json:"shelf_locations"`
}
