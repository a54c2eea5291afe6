package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/application/report"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReporteHandler maneja la descarga de reportes semanales y quincenales.
type ReporteHandler struct {
	uc *report.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *report.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// SemanalExcel godoc
// @Summary      Reporte semanal en Excel
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fecha_inicio  query  string  true  "Inicio de la semana (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/semanal-excel [get]
func (h *ReporteHandler) SemanalExcel(c *fiber.Ctx) error {
	return h.generar(c, report.DiasSemanal, mimeXLSX, h.uc.GenerarExcel)
}

// QuincenalExcel godoc
// @Summary      Reporte quincenal en Excel
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        fecha_inicio  query  string  true  "Inicio de la quincena (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/quincenal-excel [get]
func (h *ReporteHandler) QuincenalExcel(c *fiber.Ctx) error {
	return h.generar(c, report.DiasQuincenal, mimeXLSX, h.uc.GenerarExcel)
}

// SemanalPDF godoc
// @Summary      Reporte semanal en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        fecha_inicio  query  string  true  "Inicio de la semana (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/semanal-pdf [get]
func (h *ReporteHandler) SemanalPDF(c *fiber.Ctx) error {
	return h.generar(c, report.DiasSemanal, "application/pdf", h.uc.GenerarPDF)
}

// QuincenalPDF godoc
// @Summary      Reporte quincenal en PDF
// @Tags         reportes
// @Produce      application/pdf
// @Param        fecha_inicio  query  string  true  "Inicio de la quincena (YYYY-MM-DD)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/quincenal-pdf [get]
func (h *ReporteHandler) QuincenalPDF(c *fiber.Ctx) error {
	return h.generar(c, report.DiasQuincenal, "application/pdf", h.uc.GenerarPDF)
}

type generador func(ctx context.Context, inicio time.Time, dias int) (*report.Documento, error)

func (h *ReporteHandler) generar(c *fiber.Ctx, dias int, mime string, fn generador) error {
	fechaInicio := c.Query("fecha_inicio")
	if fechaInicio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FECHA_REQUERIDA", Message: "fecha de inicio requerida"})
	}
	inicio, err := time.Parse(entity.FormatoFecha, fechaInicio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FECHA_INVALIDA", Message: "fecha_inicio debe tener formato YYYY-MM-DD"})
	}

	doc, err := fn(c.UserContext(), inicio, dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, doc.Nombre))
	return c.Send(doc.Contenido)
}
