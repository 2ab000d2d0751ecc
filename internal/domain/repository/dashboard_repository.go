package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockItem resultado crudo de la consulta de productos bajo stock mínimo.
// Lo produce la DB; el use case lo convierte en DTO.
type LowStockItem struct {
	ProductID    string
	InternalCode string
	ProductName  string
	TotalStock   decimal.Decimal // SUM(quantity) sobre todas las batch_locations
	MinimumStock decimal.Decimal
}

// DashboardRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only (no modifican datos).
type DashboardRepository interface {
	// CountProducts devuelve el total de productos activos.
	CountProducts(ctx context.Context) (int, error)

	// TotalInventory devuelve la suma de cantidades de todas las batch_locations.
	// Usa COALESCE para devolver cero si no hay stock.
	TotalInventory(ctx context.Context) (decimal.Decimal, error)

	// ListLowStock devuelve los productos cuyo stock total agrupado es inferior
	// a su mínimo configurado, ordenados por mayor déficit primero.
	ListLowStock(ctx context.Context) ([]LowStockItem, error)
}
