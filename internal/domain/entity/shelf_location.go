package entity

// ShelfLocation representa una estantería concreta dentro de un área del almacén.
type ShelfLocation struct {
	ID           string
	LocationCode string // único
	AreaID       string
	Description  string
	IsActive     bool // retiro lógico, nunca borrado físico
	Audit
}
