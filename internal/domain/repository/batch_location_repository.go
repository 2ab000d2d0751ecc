package repository

import (
	"github.com/jcastellanos/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BatchLocationRepository define el puerto para consultar y actualizar la
// cantidad de un lote por estantería. Se usa dentro de transacciones para
// garantizar consistencia del motor de movimientos.
type BatchLocationRepository interface {
	GetByID(id string) (*entity.BatchLocation, error)
	Get(batchID, shelfLocationID string) (*entity.BatchLocation, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) antes del check-and-update.
	// Sobre un par inexistente no hay fila que bloquear: devuelve una fila en
	// cero con ID vacío y el Upsert posterior resuelve la carrera.
	GetForUpdate(batchID, shelfLocationID string) (*entity.BatchLocation, error)
	// Upsert inserta la fila o, si el par ya existe, suma delta a la cantidad
	// almacenada (nunca la sobreescribe: dos primeras entradas concurrentes
	// deben acumular). Deja en bl.ID el ID de la fila que quedó persistida.
	Upsert(bl *entity.BatchLocation, delta decimal.Decimal) error
	ListByBatch(batchID string) ([]*entity.BatchLocation, error)
}
