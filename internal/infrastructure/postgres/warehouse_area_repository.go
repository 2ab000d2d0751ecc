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

var _ repository.WarehouseAreaRepository = (*WarehouseAreaRepo)(nil)

// WarehouseAreaRepo implementación del puerto WarehouseAreaRepository sobre PostgreSQL.
type WarehouseAreaRepo struct {
	q Querier
}

// NewWarehouseAreaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseAreaRepository(q Querier) *WarehouseAreaRepo {
	return &WarehouseAreaRepo{q: q}
}

// Create persiste un área nueva.
func (r *WarehouseAreaRepo) Create(area *entity.WarehouseArea) error {
	query := `
		INSERT INTO warehouse_areas (id, name, description, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		area.ID, area.Name, area.Description,
		area.CreatedAt, area.CreatedBy, area.UpdatedAt, area.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID.
func (r *WarehouseAreaRepo) GetByID(id string) (*entity.WarehouseArea, error) {
	query := `
		SELECT id, name, description, created_at, created_by, updated_at, updated_by
		FROM warehouse_areas WHERE id = $1`
	var a entity.WarehouseArea
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Description,
		&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse area: %w", err)
	}
	return &a, nil
}

// Update actualiza un área existente.
func (r *WarehouseAreaRepo) Update(area *entity.WarehouseArea) error {
	query := `
		UPDATE warehouse_areas SET name = $2, description = $3, updated_at = $4, updated_by = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		area.ID, area.Name, area.Description, area.UpdatedAt, area.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse area: %w", err)
	}
	return nil
}

// List lista áreas con paginación.
func (r *WarehouseAreaRepo) List(limit, offset int) ([]*entity.WarehouseArea, error) {
	query := `
		SELECT id, name, description, created_at, created_by, updated_at, updated_by
		FROM warehouse_areas ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouse areas: %w", err)
	}
	defer rows.Close()
	return scanAreas(rows)
}

// ListAll devuelve todas las áreas (widget del dashboard).
func (r *WarehouseAreaRepo) ListAll() ([]*entity.WarehouseArea, error) {
	query := `
		SELECT id, name, description, created_at, created_by, updated_at, updated_by
		FROM warehouse_areas ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all warehouse areas: %w", err)
	}
	defer rows.Close()
	return scanAreas(rows)
}

func scanAreas(rows pgx.Rows) ([]*entity.WarehouseArea, error) {
	var list []*entity.WarehouseArea
	for rows.Next() {
		var a entity.WarehouseArea
		if err := rows.Scan(&a.ID, &a.Name, &a.Description,
			&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan warehouse area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
