package entity

import (
	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre estanterías
)

// InventoryMovement es una entrada inmutable del libro de movimientos.
// Quantity es siempre positiva; el signo lo da el tipo. Para TRANSFER la fila
// cuelga de la ubicación origen y DestinationLocationID indica el destino.
type InventoryMovement struct {
	ID                    string
	BatchLocationID       string
	MovementType          string
	Quantity              decimal.Decimal
	Reference             string // ej. número de orden o de traslado
	Notes                 string
	DestinationLocationID string // solo TRANSFER
	Audit
}
