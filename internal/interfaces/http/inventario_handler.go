package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/application/usecase"
)

// InventarioHandler maneja las consultas derivadas: snapshot de inventario,
// estadísticas y análisis de demanda.
type InventarioHandler struct {
	uc *usecase.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *usecase.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Snapshot godoc
// @Summary      Inventario completo
// @Description  Stock derivado, estado por bandas, último ingreso y egresos del mes por medicamento.
// @Tags         inventario
// @Produce      json
// @Success      200  {array}   dto.InventarioItemResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *InventarioHandler) Snapshot(c *fiber.Ctx) error {
	out, err := h.uc.Snapshot(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Estadísticas generales
// @Tags         inventario
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/estadisticas [get]
func (h *InventarioHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Demanda godoc
// @Summary      Análisis de demanda
// @Description  Top 10 de medicamentos por unidades dispensadas en la ventana.
// @Tags         inventario
// @Produce      json
// @Param        dias  query  int  false  "Días de la ventana"  default(30)
// @Success      200   {array}   dto.DemandaItemResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/analisis/demanda [get]
func (h *InventarioHandler) Demanda(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", 30)
	out, err := h.uc.Demanda(c.UserContext(), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
