package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jcastellanos/almacen-api/internal/application/analytics"
	"github.com/jcastellanos/almacen-api/internal/application/dto"
)

// AnalyticsHandler maneja el dashboard y la búsqueda global (protegido).
type AnalyticsHandler struct {
	dashboardUC *analytics.DashboardUseCase
	searchUC    *analytics.SearchUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(dashboardUC *analytics.DashboardUseCase, searchUC *analytics.SearchUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{dashboardUC: dashboardUC, searchUC: searchUC}
}

// Dashboard godoc
// @Summary      Resumen del inventario
// @Description  Totales de productos e inventario, productos bajo stock
// @Description  mínimo, últimos lotes recibidos y áreas del almacén.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Búsqueda global
// @Description  Busca por subcadena en productos (nombre y códigos), lotes
// @Description  (número) y estanterías (código). Query vacía devuelve listas vacías.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.SearchResultDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *AnalyticsHandler) Search(c *fiber.Ctx) error {
	out, err := h.searchUC.Search(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
