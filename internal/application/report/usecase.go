// Package report contiene el caso de uso de generación de reportes semanales y
// quincenales: arma la cuadrícula desde los repositorios y delega el documento
// final en un renderer (Excel o PDF).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
)

// Ventanas soportadas.
const (
	DiasSemanal   = 7
	DiasQuincenal = 15
)

// UseCase genera los reportes de demanda por rango de fechas.
type UseCase struct {
	medRepo repository.MedicamentoRepository
	movRepo repository.MovimientoRepository
	excel   CuadriculaRenderer
	pdf     CuadriculaRenderer
}

// NewUseCase construye el caso de uso con sus dos renderers.
func NewUseCase(medRepo repository.MedicamentoRepository, movRepo repository.MovimientoRepository, excel, pdf CuadriculaRenderer) *UseCase {
	return &UseCase{medRepo: medRepo, movRepo: movRepo, excel: excel, pdf: pdf}
}

// Documento es un reporte renderizado listo para descargar.
type Documento struct {
	Nombre    string // nombre de archivo sugerido (Content-Disposition)
	Contenido []byte
}

// GenerarExcel renderiza el reporte xlsx para la ventana [inicio, inicio+dias-1].
func (uc *UseCase) GenerarExcel(ctx context.Context, inicio time.Time, dias int) (*Documento, error) {
	c, err := uc.construir(ctx, inicio, dias)
	if err != nil {
		return nil, err
	}
	contenido, err := uc.excel.Render(c)
	if err != nil {
		return nil, fmt.Errorf("reporte excel: %w", err)
	}
	return &Documento{Nombre: nombreArchivo(inicio, dias, "xlsx"), Contenido: contenido}, nil
}

// GenerarPDF renderiza el reporte PDF para la ventana [inicio, inicio+dias-1].
func (uc *UseCase) GenerarPDF(ctx context.Context, inicio time.Time, dias int) (*Documento, error) {
	c, err := uc.construir(ctx, inicio, dias)
	if err != nil {
		return nil, err
	}
	contenido, err := uc.pdf.Render(c)
	if err != nil {
		return nil, fmt.Errorf("reporte pdf: %w", err)
	}
	return &Documento{Nombre: nombreArchivo(inicio, dias, "pdf"), Contenido: contenido}, nil
}

// construir arma la cuadrícula: catálogo ordenado + movimientos por medicamento.
// A diferencia del snapshot de inventario, aquí una falla del almacén aborta el
// reporte: un documento con filas en cero sería indistinguible de uno correcto.
func (uc *UseCase) construir(ctx context.Context, inicio time.Time, dias int) (*inventory.Cuadricula, error) {
	if dias != DiasSemanal && dias != DiasQuincenal {
		return nil, domain.ErrInvalidInput
	}

	meds, err := uc.medRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	movsPorMed := make(map[string][]*entity.Movimiento, len(meds))
	for _, med := range meds {
		movs, err := uc.movRepo.ListByMedicamento(ctx, med.ID)
		if err != nil {
			return nil, err
		}
		movsPorMed[med.ID] = movs
	}
	return inventory.ConstruirCuadricula(meds, movsPorMed, inicio, dias), nil
}

func nombreArchivo(inicio time.Time, dias int, ext string) string {
	periodo := "Semanal"
	if dias == DiasQuincenal {
		periodo = "Quincenal"
	}
	return fmt.Sprintf("Reporte_%s_%s.%s", periodo, inicio.Format("20060102"), ext)
}
