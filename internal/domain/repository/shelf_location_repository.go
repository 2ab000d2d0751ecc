package repository

import "github.com/jcastellanos/almacen-api/internal/domain/entity"

// ShelfLocationRepository define el puerto de persistencia para ShelfLocation (DIP).
type ShelfLocationRepository interface {
	Create(location *entity.ShelfLocation) error
	GetByID(id string) (*entity.ShelfLocation, error)
	GetByCode(code string) (*entity.ShelfLocation, error)
	Update(location *entity.ShelfLocation) error
	ListByArea(areaID string, limit, offset int) ([]*entity.ShelfLocation, error)
	List(limit, offset int) ([]*entity.ShelfLocation, error)
	// Deactivate marca la ubicación como inactiva (retiro lógico, nunca delete).
	Deactivate(id, userID string) error
}
