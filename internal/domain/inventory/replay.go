package inventory

import (
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LedgerEntry es un movimiento junto con las coordenadas (lote, estantería)
// de la batch-location origen a la que pertenece. El libro es la fuente de
// verdad: la cantidad de cualquier batch-location debe poder reconstruirse
// desde estas entradas.
type LedgerEntry struct {
	Movement         *entity.InventoryMovement
	BatchID          string
	SourceLocationID string
}

// Replay reconstruye la cantidad del lote batchID en la estantería locationID
// reproduciendo el libro: IN suma, OUT resta, TRANSFER resta en el origen y
// suma en el destino.
func Replay(entries []LedgerEntry, batchID, locationID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.BatchID != batchID {
			continue
		}
		m := e.Movement
		if e.SourceLocationID == locationID {
			switch m.MovementType {
			case entity.MovementTypeIN:
				total = total.Add(m.Quantity)
			case entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
				total = total.Sub(m.Quantity)
			}
		}
		if m.MovementType == entity.MovementTypeTRANSFER && m.DestinationLocationID == locationID {
			total = total.Add(m.Quantity)
		}
	}
	return total
}
