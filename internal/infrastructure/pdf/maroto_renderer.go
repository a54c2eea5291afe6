// Package pdf renderiza la cuadrícula del reporte como documento PDF con
// Maroto v2, en A4 apaisado.
//
// Dos layouts según la ventana:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  Semanal (7 días)                                                    │
//	│  Medicamento │ Stock Inicial │ Dem. Lun … Dem. Dom │ Total │ Final   │
//	├──────────────────────────────────────────────────────────────────────┤
//	│  Quincenal (15 días)                                                 │
//	│  Medicamento │ Stock Inicial │ Demanda Total │ Stock Final           │
//	└──────────────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/medicamentos-api/internal/application/report"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
)

var _ report.CuadriculaRenderer = (*Renderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorEncabezado = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorBlanco     = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGris       = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorFila       = &props.Color{Red: 243, Green: 240, Blue: 228}
)

// Renderer genera el documento PDF del reporte.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render produce los bytes del PDF según la ventana de la cuadrícula.
func (r *Renderer) Render(c *inventory.Cuadricula) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Medicamentos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow(c))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGris, Thickness: 0.3}))

	if c.Dias == report.DiasSemanal {
		m.AddRows(encabezadoSemanalRow(c))
		for _, fila := range c.Filas {
			m.AddRows(filaSemanalRow(fila, c.Dias))
		}
	} else {
		m.AddRows(encabezadoQuincenalRow())
		for _, fila := range c.Filas {
			m.AddRows(filaQuincenalRow(fila))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// tituloRow: "Reporte Semanal: dd/mm/yyyy al dd/mm/yyyy".
func tituloRow(c *inventory.Cuadricula) core.Row {
	periodo := "Semanal"
	if c.Dias == report.DiasQuincenal {
		periodo = "Quincenal"
	}
	titulo := fmt.Sprintf("Reporte %s: %s al %s",
		periodo, c.FechaInicio.Format("02/01/2006"), c.FechaFin().Format("02/01/2006"))

	return row.New(10).Add(
		col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 1,
		})),
	)
}

// encabezado: celda de cabecera con fondo gris y texto blanco.
func encabezado(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: align.Center,
		Color: colorBlanco, Top: 1.5,
	}))
}

func celda(valor string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(valor, props.Text{
		Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// encabezadoSemanalRow: Medicamento + Stock Inicial + una columna por día +
// Total Demanda + Stock Final.
func encabezadoSemanalRow(c *inventory.Cuadricula) core.Row {
	cols := []core.Col{
		encabezado("Medicamento", 2),
		encabezado("Stock Inicial", 1),
	}
	for d := 0; d < c.Dias; d++ {
		fecha := c.FechaInicio.AddDate(0, 0, d)
		cols = append(cols, encabezado("Dem. "+inventory.NombreDia(fecha), 1))
	}
	cols = append(cols, encabezado("Total Demanda", 1), encabezado("Stock Final", 1))

	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorEncabezado}).Add(cols...)
}

// filaSemanalRow: demanda por día (todos los turnos sumados) más totales.
func filaSemanalRow(fila inventory.FilaReporte, dias int) core.Row {
	cols := []core.Col{
		celda(fila.Medicamento.Nombre, 2, align.Left),
		celda(strconv.Itoa(fila.StockActual), 1, align.Center),
	}
	for d := 0; d < dias; d++ {
		cols = append(cols, celda(strconv.Itoa(fila.SalidasPorDia[d]), 1, align.Center))
	}
	cols = append(cols,
		celda(strconv.Itoa(fila.DemandaTotal), 1, align.Center),
		celda(strconv.Itoa(fila.StockActual-fila.DemandaTotal), 1, align.Center),
	)

	return row.New(6).WithStyle(&props.Cell{BackgroundColor: colorFila}).Add(cols...)
}

// encabezadoQuincenalRow: resumen sin desglose diario.
func encabezadoQuincenalRow() core.Row {
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorEncabezado}).Add(
		encabezado("Medicamento", 5),
		encabezado("Stock Inicial", 2),
		encabezado("Demanda Total", 3),
		encabezado("Stock Final", 2),
	)
}

func filaQuincenalRow(fila inventory.FilaReporte) core.Row {
	return row.New(6).WithStyle(&props.Cell{BackgroundColor: colorFila}).Add(
		celda(fila.Medicamento.Nombre, 5, align.Left),
		celda(strconv.Itoa(fila.StockActual), 2, align.Center),
		celda(strconv.Itoa(fila.DemandaTotal), 3, align.Center),
		celda(strconv.Itoa(fila.StockActual-fila.DemandaTotal), 2, align.Center),
	)
}
