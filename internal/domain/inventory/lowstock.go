package inventory

import (
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductTotal reconstruye el stock total de un producto desde el libro,
// sumando las entradas de sus lotes. Los TRANSFER mueven stock dentro del
// producto, así que su efecto neto sobre el total es cero.
func ProductTotal(entries []LedgerEntry, batchIDs []string) decimal.Decimal {
	ids := make(map[string]bool, len(batchIDs))
	for _, id := range batchIDs {
		ids[id] = true
	}
	total := decimal.Zero
	for _, e := range entries {
		if !ids[e.BatchID] {
			continue
		}
		switch e.Movement.MovementType {
		case entity.MovementTypeIN:
			total = total.Add(e.Movement.Quantity)
		case entity.MovementTypeOUT:
			total = total.Sub(e.Movement.Quantity)
		}
	}
	return total
}

// BelowMinimum indica si un producto está bajo stock: su total queda por
// debajo del mínimo configurado. Es el mismo criterio que usa la consulta
// del dashboard (SUM(quantity) < minimum_stock).
func BelowMinimum(total, minimumStock decimal.Decimal) bool {
	return total.LessThan(minimumStock)
}
