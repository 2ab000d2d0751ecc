package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBatchRequest body para POST /api/batches.
type CreateBatchRequest struct {
	ProductID    string     `json:"product_id"`
	BatchNumber  string     `json:"batch_number"`
	ReceivedDate *time.Time `json:"received_date,omitempty"` // nil = ahora
	Notes        string     `json:"notes"`
}

// Validate devuelve los errores por campo (vacío = válido).
func (r CreateBatchRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.ProductID == "" {
		fields["product_id"] = "requerido"
	}
	if r.BatchNumber == "" {
		fields["batch_number"] = "requerido"
	}
	return fields
}

// UpdateBatchRequest body para PUT /api/batches/:id. Solo las notas son
// editables: número y producto quedan fijos al registrar el lote.
type UpdateBatchRequest struct {
	Notes string `json:"notes"`
}

// BatchResponse representación JSON de un lote.
type BatchResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	BatchNumber  string    `json:"batch_number"`
	ReceivedDate time.Time `json:"received_date"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BatchLocationResponse cantidad de un lote en una estantería.
type BatchLocationResponse struct {
	ID              string          `json:"id"`
	BatchID         string          `json:"batch_id"`
	ShelfLocationID string          `json:"shelf_location_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
