package entity

import "github.com/shopspring/decimal"

// BatchLocation representa la cantidad de un lote en una estantería concreta.
// El par (batch_id, shelf_location_id) es único: una sola fila acumula el
// total del lote en esa ubicación. Quantity nunca es negativa y siempre es
// derivable reproduciendo los movimientos asociados (ver inventory.Replay).
type BatchLocation struct {
	ID              string
	BatchID         string
	ShelfLocationID string
	Quantity        decimal.Decimal
	Audit
}
