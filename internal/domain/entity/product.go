package entity

import "github.com/shopspring/decimal"

// Product representa el dato maestro de un producto. InternalCode es único;
// MinimumStock define el umbral de stock bajo que alimenta el dashboard.
// El stock real vive por lote y ubicación en BatchLocation.
type Product struct {
	ID               string
	Name             string
	Description      string
	ManufacturerCode string
	InternalCode     string // código interno único
	CategoryID       string
	MinimumStock     decimal.Decimal
	IsActive         bool // retiro lógico, nunca borrado físico
	Audit
}
