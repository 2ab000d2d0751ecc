package dto

import (
	"time"

	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MoveInventoryRequest body para POST /api/inventory/move.
// El origen se identifica con batch_location_id, o con el par
// (batch_id, shelf_location_id) para entradas sobre ubicaciones nuevas.
type MoveInventoryRequest struct {
	BatchLocationID       string          `json:"batch_location_id,omitempty"`
	BatchID               string          `json:"batch_id,omitempty"`
	ShelfLocationID       string          `json:"shelf_location_id,omitempty"`
	MovementType          string          `json:"movement_type"`
	Quantity              decimal.Decimal `json:"quantity"`
	Reference             string          `json:"reference,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	DestinationLocationID string          `json:"destination_location_id,omitempty"`
}

// Validate devuelve los errores por campo (vacío = válido).
// Las validaciones de existencia y stock las hace el motor dentro de la tx.
func (r MoveInventoryRequest) Validate() map[string]string {
	fields := map[string]string{}
	switch r.MovementType {
	case entity.MovementTypeIN, entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
	case "":
		fields["movement_type"] = "requerido"
	default:
		fields["movement_type"] = "debe ser IN, OUT o TRANSFER"
	}
	if r.BatchLocationID == "" && (r.BatchID == "" || r.ShelfLocationID == "") {
		fields["batch_location_id"] = "requerido (o batch_id + shelf_location_id)"
	}
	if !r.Quantity.IsPositive() {
		fields["quantity"] = "debe ser positiva"
	} else if !r.Quantity.IsInteger() {
		fields["quantity"] = "debe ser un número entero de unidades"
	}
	if r.MovementType == entity.MovementTypeTRANSFER && r.DestinationLocationID == "" {
		fields["destination_location_id"] = "requerido para TRANSFER"
	}
	if r.MovementType != entity.MovementTypeTRANSFER && r.DestinationLocationID != "" {
		fields["destination_location_id"] = "solo aplica a TRANSFER"
	}
	return fields
}

// MovementResponse representación JSON de un movimiento aplicado.
type MovementResponse struct {
	ID                    string          `json:"id"`
	BatchLocationID       string          `json:"batch_location_id"`
	MovementType          string          `json:"movement_type"`
	Quantity              decimal.Decimal `json:"quantity"`
	Reference             string          `json:"reference,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	DestinationLocationID string          `json:"destination_location_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	CreatedBy             string          `json:"created_by"`
}
