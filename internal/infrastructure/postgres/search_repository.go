package postgres

import (
	"context"
	"fmt"

	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

var _ repository.SearchRepository = (*SearchRepo)(nil)

// SearchRepo búsqueda global por subcadena usando ILIKE.
type SearchRepo struct {
	q Querier
}

func NewSearchRepository(q Querier) *SearchRepo {
	return &SearchRepo{q: q}
}

// SearchProducts busca productos activos por nombre o códigos.
func (r *SearchRepo) SearchProducts(ctx context.Context, q string, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE is_active = TRUE
		AND (name ILIKE $1 OR internal_code ILIKE $1 OR manufacturer_code ILIKE $1)
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchBatches busca lotes por número de lote.
func (r *SearchRepo) SearchBatches(ctx context.Context, q string, limit int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches
		WHERE batch_number ILIKE $1
		ORDER BY received_date DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// SearchShelfLocations busca estanterías activas por código de ubicación.
func (r *SearchRepo) SearchShelfLocations(ctx context.Context, q string, limit int) ([]*entity.ShelfLocation, error) {
	query := `SELECT ` + shelfColumns + ` FROM shelf_locations
		WHERE is_active = TRUE AND location_code ILIKE $1
		ORDER BY location_code LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search shelf locations: %w", err)
	}
	defer rows.Close()
	return scanShelfLocations(rows)
}
