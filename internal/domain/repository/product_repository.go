package repository

import "github.com/jcastellanos/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByInternalCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// Deactivate marca el producto como inactivo (retiro lógico, nunca delete).
	Deactivate(id, userID string) error
}
