package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
	"github.com/jcastellanos/almacen-api/internal/application/inventory"
	"github.com/jcastellanos/almacen-api/internal/domain"
)

// InventoryHandler maneja el registro y consulta de movimientos (protegido).
type InventoryHandler struct {
	uc *inventory.MoveInventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MoveInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Move godoc
// @Summary      Registrar movimiento de inventario
// @Description  Aplica una entrada (IN), salida (OUT) o traslado (TRANSFER)
// @Description  de forma atómica: actualiza las cantidades y añade la entrada
// @Description  al libro de movimientos en una sola transacción.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveInventoryRequest  true  "Origen, tipo, cantidad y destino (TRANSFER)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/move [post]
func (h *InventoryHandler) Move(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.MoveInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := in.Validate(); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(fields))
	}
	out, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote o estantería no encontrados"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la ubicación de origen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos de una ubicación de lote
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        batch_location_id  query  string  true   "Ubicación de lote"
// @Param        from               query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to                 query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit              query  int     false  "Límite"   default(20)
// @Param        offset             query  int     false  "Offset"   default(0)
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	blID := c.Query("batch_location_id")
	if blID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "batch_location_id es requerido"})
	}
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: fecha inválida"})
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: fecha inválida"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	out, err := h.uc.ListMovements(blID, from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseTimeParam acepta RFC3339 o fecha simple. Vacío devuelve nil.
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
