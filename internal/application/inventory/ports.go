package inventory

import (
	"context"

	"github.com/jcastellanos/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se aplican todas las patas del movimiento o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		blRepo repository.BatchLocationRepository,
	) error) error
}
