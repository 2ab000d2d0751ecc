package repository

import "github.com/jcastellanos/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdatePassword(userID, passwordHash string) error
	List(limit, offset int) ([]*entity.User, error)
}
