package entity

import "time"

// Batch representa un lote recibido de un producto. El par
// (batch_number, product_id) es único: el mismo número de lote puede repetirse
// entre productos distintos pero no dentro del mismo producto.
type Batch struct {
	ID           string
	ProductID    string
	BatchNumber  string
	ReceivedDate time.Time
	Notes        string
	Audit
}
