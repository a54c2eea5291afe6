package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
)

// RequireStore corta con 503 cuando el servicio arrancó sin credenciales de
// Firebase (modo degradado). Se aplica a todas las rutas de datos; /api/health
// queda fuera para poder reportar el estado.
func RequireStore(disponible func() bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !disponible() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "BD_NO_DISPONIBLE",
				Message: "base de datos no disponible",
			})
		}
		return c.Next()
	}
}
