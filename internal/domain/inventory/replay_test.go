package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/jcastellanos/almacen-api/internal/domain/inventory"
)

const (
	batchID = "lote-1"
	shelfA  = "est-a"
	shelfB  = "est-b"
)

func entry(src, typ string, q int64, dest string) inventory.LedgerEntry {
	return inventory.LedgerEntry{
		Movement: &entity.InventoryMovement{
			MovementType:          typ,
			Quantity:              decimal.NewFromInt(q),
			DestinationLocationID: dest,
		},
		BatchID:          batchID,
		SourceLocationID: src,
	}
}

func TestReplay_SumaYResta(t *testing.T) {
	entries := []inventory.LedgerEntry{
		entry(shelfA, entity.MovementTypeIN, 10, ""),
		entry(shelfA, entity.MovementTypeOUT, 3, ""),
		entry(shelfA, entity.MovementTypeIN, 5, ""),
	}
	got := inventory.Replay(entries, batchID, shelfA)
	assert.True(t, got.Equal(decimal.NewFromInt(12)), "10 - 3 + 5 = 12, got %s", got)
}

// Un TRANSFER resta en el origen y suma en el destino con una sola entrada.
func TestReplay_TransferAfectaAmbasPatas(t *testing.T) {
	entries := []inventory.LedgerEntry{
		entry(shelfA, entity.MovementTypeIN, 10, ""),
		entry(shelfA, entity.MovementTypeTRANSFER, 4, shelfB),
	}
	assert.True(t, inventory.Replay(entries, batchID, shelfA).Equal(decimal.NewFromInt(6)))
	assert.True(t, inventory.Replay(entries, batchID, shelfB).Equal(decimal.NewFromInt(4)))
}

// Los movimientos de otros lotes no afectan el replay.
func TestReplay_IgnoraOtrosLotes(t *testing.T) {
	otro := entry(shelfA, entity.MovementTypeIN, 100, "")
	otro.BatchID = "lote-2"

	entries := []inventory.LedgerEntry{
		entry(shelfA, entity.MovementTypeIN, 7, ""),
		otro,
	}
	assert.True(t, inventory.Replay(entries, batchID, shelfA).Equal(decimal.NewFromInt(7)))
}

func TestReplay_SinEntradas_Cero(t *testing.T) {
	got := inventory.Replay(nil, batchID, shelfA)
	assert.True(t, got.IsZero())
}
