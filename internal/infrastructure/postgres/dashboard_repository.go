package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellanos/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de lectura agregadas para el dashboard.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProducts cuenta los productos activos.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// TotalInventory suma las cantidades de todas las batch_locations.
func (r *DashboardRepo) TotalInventory(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM batch_locations`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory: %w", err)
	}
	return total, nil
}

// ListLowStock devuelve los productos activos cuyo stock total está por debajo
// de su mínimo. Los productos sin batch_locations cuentan como stock cero.
func (r *DashboardRepo) ListLowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.internal_code, p.name,
			COALESCE(SUM(bl.quantity), 0) AS total_stock,
			p.minimum_stock
		FROM products p
		LEFT JOIN batches b ON b.product_id = p.id
		LEFT JOIN batch_locations bl ON bl.batch_id = b.id
		WHERE p.is_active = TRUE
		GROUP BY p.id, p.internal_code, p.name, p.minimum_stock
		HAVING COALESCE(SUM(bl.quantity), 0) < p.minimum_stock
		ORDER BY p.minimum_stock - COALESCE(SUM(bl.quantity), 0) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.InternalCode, &it.ProductName, &it.TotalStock, &it.MinimumStock); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
