package entity

// WarehouseArea representa un área del almacén (patio, interior, exterior).
type WarehouseArea struct {
	ID          string
	Name        string // único
	Description string
	Audit
}
