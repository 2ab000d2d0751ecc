package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.BatchLocationRepository = (*BatchLocationRepo)(nil)

// BatchLocationRepo implementación del puerto BatchLocationRepository.
// Dentro del motor de movimientos se construye sobre la tx activa.
type BatchLocationRepo struct {
	q Querier
}

func NewBatchLocationRepository(q Querier) *BatchLocationRepo {
	return &BatchLocationRepo{q: q}
}

const batchLocationColumns = `id, batch_id, shelf_location_id, quantity,
		created_at, created_by, updated_at, updated_by`

// GetByID obtiene una fila de stock por ID.
func (r *BatchLocationRepo) GetByID(id string) (*entity.BatchLocation, error) {
	query := `SELECT ` + batchLocationColumns + ` FROM batch_locations WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// Get obtiene la fila de stock del par (lote, estantería).
func (r *BatchLocationRepo) Get(batchID, shelfLocationID string) (*entity.BatchLocation, error) {
	query := `SELECT ` + batchLocationColumns + ` FROM batch_locations
		WHERE batch_id = $1 AND shelf_location_id = $2`
	return r.scanRow(r.q.QueryRow(context.Background(), query, batchID, shelfLocationID))
}

// GetForUpdate obtiene la fila de stock y la bloquea (SELECT FOR UPDATE).
// Si no existe devuelve una fila en cero con ID vacío: el motor la crea al
// aplicar la primera entrada.
func (r *BatchLocationRepo) GetForUpdate(batchID, shelfLocationID string) (*entity.BatchLocation, error) {
	query := `SELECT ` + batchLocationColumns + ` FROM batch_locations
		WHERE batch_id = $1 AND shelf_location_id = $2
		FOR UPDATE`
	var bl entity.BatchLocation
	err := r.q.QueryRow(context.Background(), query, batchID, shelfLocationID).Scan(
		&bl.ID, &bl.BatchID, &bl.ShelfLocationID, &bl.Quantity,
		&bl.CreatedAt, &bl.CreatedBy, &bl.UpdatedAt, &bl.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.BatchLocation{
				BatchID:         batchID,
				ShelfLocationID: shelfLocationID,
				Quantity:        decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get batch location for update: %w", err)
	}
	return &bl, nil
}

// Upsert inserta la fila de stock o, si el par (batch_id, shelf_location_id)
// ya existe, suma delta a la cantidad almacenada. La suma relativa cubre la
// carrera del primer contacto: un FOR UPDATE sobre un par inexistente no
// bloquea nada, así que dos transacciones pueden leer cero a la vez; la que
// pierde el conflicto de unicidad acumula sobre lo que la otra insertó en vez
// de pisarlo, y el libro sigue cuadrando con la fila. RETURNING devuelve el
// ID de la fila que quedó, sea el insertado o el preexistente.
func (r *BatchLocationRepo) Upsert(bl *entity.BatchLocation, delta decimal.Decimal) error {
	query := `
		INSERT INTO batch_locations (` + batchLocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (batch_id, shelf_location_id) DO UPDATE SET
			quantity = batch_locations.quantity + $9,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		bl.ID, bl.BatchID, bl.ShelfLocationID, bl.Quantity,
		bl.CreatedAt, bl.CreatedBy, bl.UpdatedAt, bl.UpdatedBy,
		delta,
	).Scan(&bl.ID)
	if err != nil {
		return fmt.Errorf("upsert batch location: %w", err)
	}
	return nil
}

// ListByBatch lista las ubicaciones con stock de un lote.
func (r *BatchLocationRepo) ListByBatch(batchID string) ([]*entity.BatchLocation, error) {
	query := `SELECT ` + batchLocationColumns + ` FROM batch_locations
		WHERE batch_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch locations: %w", err)
	}
	defer rows.Close()

	var list []*entity.BatchLocation
	for rows.Next() {
		var bl entity.BatchLocation
		if err := rows.Scan(
			&bl.ID, &bl.BatchID, &bl.ShelfLocationID, &bl.Quantity,
			&bl.CreatedAt, &bl.CreatedBy, &bl.UpdatedAt, &bl.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan batch location: %w", err)
		}
		list = append(list, &bl)
	}
	return list, rows.Err()
}

func (r *BatchLocationRepo) scanRow(row pgx.Row) (*entity.BatchLocation, error) {
	var bl entity.BatchLocation
	err := row.Scan(
		&bl.ID, &bl.BatchID, &bl.ShelfLocationID, &bl.Quantity,
		&bl.CreatedAt, &bl.CreatedBy, &bl.UpdatedAt, &bl.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch location: %w", err)
	}
	return &bl, nil
}
