package repository

import (
	"time"

	"github.com/jcastellanos/almacen-api/internal/domain/entity"
)

// InventoryMovementRepository define el puerto de persistencia para el libro
// de movimientos. Solo inserta y lee: las filas son inmutables.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	ListByBatchLocation(batchLocationID string, from, to *time.Time, limit, offset int) ([]*entity.InventoryMovement, error)
}
