package http

import (
	"github.com/gofiber/fiber/v2"
)

// HealthResponse estado del servicio y de la conexión con Firebase.
type HealthResponse struct {
	Status   string `json:"status"`
	Firebase string `json:"firebase"`
}

// HealthHandler responde el estado del servicio.
type HealthHandler struct {
	disponible func() bool
}

// NewHealthHandler construye el handler.
func NewHealthHandler(disponible func() bool) *HealthHandler {
	return &HealthHandler{disponible: disponible}
}

// Health godoc
// @Summary      Estado del servicio
// @Description  Responde 200 incluso en modo degradado; el campo firebase indica la conexión.
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	firebase := "connected"
	if !h.disponible() {
		firebase = "disconnected"
	}
	return c.JSON(HealthResponse{Status: "ok", Firebase: firebase})
}
