package repository

import "github.com/jcastellanos/almacen-api/internal/domain/entity"

// BatchRepository define el puerto de persistencia para Batch (DIP).
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	Update(batch *entity.Batch) error
	ListByProduct(productID string, limit, offset int) ([]*entity.Batch, error)
	List(limit, offset int) ([]*entity.Batch, error)
	// ListRecent devuelve los últimos lotes recibidos (widget del dashboard).
	ListRecent(limit int) ([]*entity.Batch, error)
}
