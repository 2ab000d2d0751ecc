package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/application/usecase"
	"github.com/jcastellanos/almacen-api/internal/domain"
)

// WarehouseHandler maneja áreas del almacén y estanterías (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// CreateArea godoc
// @Summary      Crear área del almacén
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAreaRequest  true  "Nombre y descripción"
// @Success      201   {object}  dto.AreaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/areas [post]
func (h *WarehouseHandler) CreateArea(c *fiber.Ctx) error {
	var in dto.CreateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.CreateArea(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el área ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetArea godoc
// @Summary      Obtener área por ID
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del área"
// @Success      200  {object}  dto.AreaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [get]
func (h *WarehouseHandler) GetArea(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetArea(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
	}
	return c.JSON(out)
}

// ListAreas godoc
// @Summary      Listar áreas del almacén
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.AreaResponse
// @Router       /api/areas [get]
func (h *WarehouseHandler) ListAreas(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListAreas(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateArea godoc
// @Summary      Actualizar área del almacén
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del área"
// @Param        body  body  dto.CreateAreaRequest  true  "Nombre y descripción"
// @Success      200   {object}  dto.AreaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/areas/{id} [put]
func (h *WarehouseHandler) UpdateArea(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateAreaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.UpdateArea(id, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el área ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
	}
	return c.JSON(out)
}

// CreateShelfLocation godoc
// @Summary      Crear estantería
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShelfLocationRequest  true  "Código, área y descripción"
// @Success      201   {object}  dto.ShelfLocationResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *WarehouseHandler) CreateShelfLocation(c *fiber.Ctx) error {
	var in dto.CreateShelfLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := in.Validate(); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(fields))
	}
	out, err := h.uc.CreateShelfLocation(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de ubicación ya existe"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "área no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetShelfLocation godoc
// @Summary      Obtener estantería por ID
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estantería"
// @Success      200  {object}  dto.ShelfLocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [get]
func (h *WarehouseHandler) GetShelfLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetShelfLocation(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
	}
	return c.JSON(out)
}

// UpdateShelfLocation godoc
// @Summary      Actualizar estantería
// @Description  Solo la descripción es editable.
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la estantería"
// @Param        body  body  dto.UpdateShelfLocationRequest  true  "Descripción"
// @Success      200   {object}  dto.ShelfLocationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [put]
func (h *WarehouseHandler) UpdateShelfLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateShelfLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateShelfLocation(id, GetUserID(c), in.Description)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
	}
	return c.JSON(out)
}

// ListShelfLocations godoc
// @Summary      Listar estanterías
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        area_id  query  string  false  "Filtrar por área"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {array}  dto.ShelfLocationResponse
// @Router       /api/locations [get]
func (h *WarehouseHandler) ListShelfLocations(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.ListShelfLocations(c.Query("area_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeactivateShelfLocation godoc
// @Summary      Retirar estantería (borrado lógico)
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la estantería"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/{id} [delete]
func (h *WarehouseHandler) DeactivateShelfLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeactivateShelfLocation(id, GetUserID(c)); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "estantería retirada"})
}
