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

var _ repository.ShelfLocationRepository = (*ShelfLocationRepo)(nil)

// ShelfLocationRepo implementación del puerto ShelfLocationRepository sobre PostgreSQL.
type ShelfLocationRepo struct {
	q Querier
}

// NewShelfLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShelfLocationRepository(q Querier) *ShelfLocationRepo {
	return &ShelfLocationRepo{q: q}
}

const shelfColumns = `id, location_code, area_id, description, is_active,
		created_at, created_by, updated_at, updated_by`

// Create persiste una estantería nueva.
func (r *ShelfLocationRepo) Create(location *entity.ShelfLocation) error {
	query := `
		INSERT INTO shelf_locations (` + shelfColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.LocationCode, location.AreaID, location.Description, location.IsActive,
		location.CreatedAt, location.CreatedBy, location.UpdatedAt, location.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shelf location: %w", err)
	}
	return nil
}

// GetByID obtiene una estantería por ID.
func (r *ShelfLocationRepo) GetByID(id string) (*entity.ShelfLocation, error) {
	query := `SELECT ` + shelfColumns + ` FROM shelf_locations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene una estantería por código de ubicación.
func (r *ShelfLocationRepo) GetByCode(code string) (*entity.ShelfLocation, error) {
	query := `SELECT ` + shelfColumns + ` FROM shelf_locations WHERE location_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// Update actualiza una estantería existente.
func (r *ShelfLocationRepo) Update(location *entity.ShelfLocation) error {
	query := `
		UPDATE shelf_locations SET location_code = $2, area_id = $3, description = $4,
			updated_at = $5, updated_by = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.LocationCode, location.AreaID, location.Description,
		location.UpdatedAt, location.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update shelf location: %w", err)
	}
	return nil
}

// ListByArea lista estanterías de un área con paginación.
func (r *ShelfLocationRepo) ListByArea(areaID string, limit, offset int) ([]*entity.ShelfLocation, error) {
	query := `SELECT ` + shelfColumns + ` FROM shelf_locations
		WHERE area_id = $1 ORDER BY location_code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, areaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shelf locations by area: %w", err)
	}
	defer rows.Close()
	return scanShelfLocations(rows)
}

// List lista todas las estanterías con paginación.
func (r *ShelfLocationRepo) List(limit, offset int) ([]*entity.ShelfLocation, error) {
	query := `SELECT ` + shelfColumns + ` FROM shelf_locations ORDER BY location_code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shelf locations: %w", err)
	}
	defer rows.Close()
	return scanShelfLocations(rows)
}

// Deactivate marca la estantería como inactiva (retiro lógico).
func (r *ShelfLocationRepo) Deactivate(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE shelf_locations SET is_active = false, updated_at = now(), updated_by = $2 WHERE id = $1`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("deactivate shelf location: %w", err)
	}
	return nil
}

func (r *ShelfLocationRepo) scanOne(row pgx.Row) (*entity.ShelfLocation, error) {
	var l entity.ShelfLocation
	err := row.Scan(
		&l.ID, &l.LocationCode, &l.AreaID, &l.Description, &l.IsActive,
		&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shelf location: %w", err)
	}
	return &l, nil
}

func scanShelfLocations(rows pgx.Rows) ([]*entity.ShelfLocation, error) {
	var list []*entity.ShelfLocation
	for rows.Next() {
		var l entity.ShelfLocation
		if err := rows.Scan(
			&l.ID, &l.LocationCode, &l.AreaID, &l.Description, &l.IsActive,
			&l.CreatedAt, &l.CreatedBy, &l.UpdatedAt, &l.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan shelf location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
