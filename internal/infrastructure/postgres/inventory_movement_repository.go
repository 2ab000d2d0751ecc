package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jcastellanos/almacen-api/internal/domain"
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto sobre la tabla
// inventory_movements. Solo INSERT y SELECT: las filas nunca se modifican.
type InventoryMovementRepo struct {
	q Querier
}

func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

const movementColumns = `id, batch_location_id, movement_type, quantity,
		reference, notes, destination_location_id,
		created_at, created_by, updated_at, updated_by`

// Create inserta una entrada del libro de movimientos.
func (r *InventoryMovementRepo) Create(m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.BatchLocationID, m.MovementType, m.Quantity,
		m.Reference, m.Notes, m.DestinationLocationID,
		m.CreatedAt, m.CreatedBy, m.UpdatedAt, m.UpdatedBy,
	)
	if err != nil {
		// Respaldo de las FK: estantería destino o usuario inexistentes.
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	query := `SELECT id, batch_location_id, movement_type, quantity,
		reference, notes, COALESCE(destination_location_id, ''),
		created_at, created_by, updated_at, updated_by
		FROM inventory_movements WHERE id = $1`
	var m entity.InventoryMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.BatchLocationID, &m.MovementType, &m.Quantity,
		&m.Reference, &m.Notes, &m.DestinationLocationID,
		&m.CreatedAt, &m.CreatedBy, &m.UpdatedAt, &m.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListByBatchLocation lista movimientos de una ubicación de lote, opcionalmente
// filtrados por rango de fechas, del más reciente al más antiguo.
func (r *InventoryMovementRepo) ListByBatchLocation(batchLocationID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `SELECT id, batch_location_id, movement_type, quantity,
		reference, notes, COALESCE(destination_location_id, ''),
		created_at, created_by, updated_at, updated_by
		FROM inventory_movements
		WHERE batch_location_id = $1`
	args := []interface{}{batchLocationID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(
			&m.ID, &m.BatchLocationID, &m.MovementType, &m.Quantity,
			&m.Reference, &m.Notes, &m.DestinationLocationID,
			&m.CreatedAt, &m.CreatedBy, &m.UpdatedAt, &m.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
