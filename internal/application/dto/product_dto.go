package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ManufacturerCode string          `json:"manufacturer_code"`
	InternalCode     string          `json:"internal_code"`
	CategoryID       string          `json:"category_id"`
	MinimumStock     decimal.Decimal `json:"minimum_stock"`
}

// Validate devuelve los errores por campo (vacío = válido).
func (r CreateProductRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.Name == "" {
		fields["name"] = "requerido"
	}
	if r.InternalCode == "" {
		fields["internal_code"] = "requerido"
	}
	if r.CategoryID == "" {
		fields["category_id"] = "requerido"
	}
	if r.MinimumStock.IsNegative() {
		fields["minimum_stock"] = "no puede ser negativo"
	}
	return fields
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ManufacturerCode string          `json:"manufacturer_code"`
	CategoryID       string          `json:"category_id"`
	MinimumStock     decimal.Decimal `json:"minimum_stock"`
}

// ProductResponse representación JSON de un producto.
type ProductResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	ManufacturerCode string          `json:"manufacturer_code,omitempty"`
	InternalCode     string          `json:"internal_code"`
	CategoryID       string          `json:"category_id"`
	MinimumStock     decimal.Decimal `json:"minimum_stock"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
