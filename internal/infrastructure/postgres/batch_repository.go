package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, product_id, batch_number, received_date, notes,
		created_at, created_by, updated_at, updated_by`

// Create persiste un lote. El constraint (batch_number, product_id) único
// sale como ErrDuplicate.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.ProductID, batch.BatchNumber, batch.ReceivedDate, batch.Notes,
		batch.CreatedAt, batch.CreatedBy, batch.UpdatedAt, batch.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProductID, &b.BatchNumber, &b.ReceivedDate, &b.Notes,
		&b.CreatedAt, &b.CreatedBy, &b.UpdatedAt, &b.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// Update actualiza las notas del lote (número y producto son inmutables).
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches SET notes = $2, updated_at = $3, updated_by = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Notes, batch.UpdatedAt, batch.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// ListByProduct lista lotes de un producto con paginación.
func (r *BatchRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches
		WHERE product_id = $1 ORDER BY received_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list batches by product: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// List lista lotes con paginación.
func (r *BatchRepo) List(limit, offset int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY received_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

// ListRecent devuelve los últimos lotes recibidos.
func (r *BatchRepo) ListRecent(limit int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY received_date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent batches: %w", err)
	}
	defer rows.Close()
	return scanBatches(rows)
}

func scanBatches(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.BatchNumber, &b.ReceivedDate, &b.Notes,
			&b.CreatedAt, &b.CreatedBy, &b.UpdatedAt, &b.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
