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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, manufacturer_code, internal_code, category_id,
		minimum_stock, is_active, created_at, created_by, updated_at, updated_by`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.ManufacturerCode,
		product.InternalCode, product.CategoryID, product.MinimumStock, product.IsActive,
		product.CreatedAt, product.CreatedBy, product.UpdatedAt, product.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByInternalCode obtiene un producto por código interno.
func (r *ProductRepo) GetByInternalCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE internal_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// Update actualiza el dato maestro del producto. InternalCode no cambia.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, manufacturer_code = $4,
			category_id = $5, minimum_stock = $6, updated_at = $7, updated_by = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.ManufacturerCode,
		product.CategoryID, product.MinimumStock, product.UpdatedAt, product.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Deactivate marca el producto como inactivo (retiro lógico).
func (r *ProductRepo) Deactivate(id, userID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_at = now(), updated_by = $2 WHERE id = $1`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ManufacturerCode, &p.InternalCode, &p.CategoryID,
		&p.MinimumStock, &p.IsActive, &p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.ManufacturerCode, &p.InternalCode, &p.CategoryID,
			&p.MinimumStock, &p.IsActive, &p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
