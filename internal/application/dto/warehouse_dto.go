package dto

import "time"

// CreateAreaRequest body para POST /api/areas.
type CreateAreaRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AreaResponse representación JSON de un área del almacén.
type AreaResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateShelfLocationRequest body para POST /api/locations.
type CreateShelfLocationRequest struct {
	LocationCode string `json:"location_code"`
	AreaID       string `json:"area_id"`
	Description  string `json:"description"`
}

// Validate devuelve los errores por campo (vacío = válido).
func (r CreateShelfLocationRequest) Validate() map[string]string {
	fields := map[string]string{}
	if r.LocationCode == "" {
		fields["location_code"] = "requerido"
	}
	if r.AreaID == "" {
		fields["area_id"] = "requerido"
	}
	return fields
}

// UpdateShelfLocationRequest body para PUT /api/locations/:id. El código y el
// área no se tocan una vez hay movimientos sobre la estantería.
type UpdateShelfLocationRequest struct {
	Description string `json:"description"`
}

// ShelfLocationResponse representación JSON de una estantería.
type ShelfLocationResponse struct {
	ID           string    `json:"id"`
	LocationCode string    `json:"location_code"`
	AreaID       string    `json:"area_id"`
	Description  string    `json:"description,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
