package entity

import "time"

// Audit agrupa los campos de auditoría compartidos por todas las entidades de
// negocio: quién creó y quién modificó por última vez, y cuándo. Se embebe por
// valor en cada entidad; la capa de persistencia lo escribe en cada tabla.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string // ID del usuario creador
	UpdatedAt time.Time
	UpdatedBy string // ID del último usuario que modificó
}

// Stamp inicializa los cuatro campos en la creación de la entidad.
func (a *Audit) Stamp(userID string, now time.Time) {
	a.CreatedAt = now
	a.CreatedBy = userID
	a.UpdatedAt = now
	a.UpdatedBy = userID
}

// Touch actualiza el par updated en cada mutación.
func (a *Audit) Touch(userID string, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = userID
}
