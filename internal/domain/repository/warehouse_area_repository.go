package repository

import "github.com/jcastellanos/almacen-api/internal/domain/entity"

// WarehouseAreaRepository define el puerto de persistencia para WarehouseArea (DIP).
type WarehouseAreaRepository interface {
	Create(area *entity.WarehouseArea) error
	GetByID(id string) (*entity.WarehouseArea, error)
	Update(area *entity.WarehouseArea) error
	List(limit, offset int) ([]*entity.WarehouseArea, error)
	ListAll() ([]*entity.WarehouseArea, error)
}
