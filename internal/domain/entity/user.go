package entity

import "time"

// User representa un usuario del sistema; es el ancla de la auditoría
// (created_by / updated_by de todas las entidades apuntan aquí).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
