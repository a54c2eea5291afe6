// Package excel renderiza la cuadrícula del reporte como libro xlsx con
// excelize, reproduciendo el formato del registro físico del carro de
// urgencias: título en banda azul, encabezados de día combinados sobre las
// subcolumnas de turno M/T/N y pie con línea de firma.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/medicamentos-api/internal/application/report"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
)

var _ report.CuadriculaRenderer = (*Renderer)(nil)

const (
	nombreHoja  = "Reporte"
	tituloBanda = "REGISTRO DE MEDICAMENTOS DEL CARRO DE URGENCIAS"

	filaEncabezado = 4 // fila superior del encabezado de dos filas
	colPrimerDia   = 5 // columna E: primera celda de turno
)

// Renderer genera el documento xlsx.
type Renderer struct{}

// NewRenderer construye el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// hoja acumula escrituras sobre una hoja con error pegajoso, para no ensuciar
// el armado de la cuadrícula con un if err por celda.
type hoja struct {
	f      *excelize.File
	nombre string
	err    error
}

func (h *hoja) set(col, fila int, v interface{}) {
	if h.err != nil {
		return
	}
	celda, err := excelize.CoordinatesToCellName(col, fila)
	if err != nil {
		h.err = err
		return
	}
	h.err = h.f.SetCellValue(h.nombre, celda, v)
}

func (h *hoja) merge(col1, fila1, col2, fila2 int) {
	if h.err != nil {
		return
	}
	desde, err := excelize.CoordinatesToCellName(col1, fila1)
	if err != nil {
		h.err = err
		return
	}
	hasta, err := excelize.CoordinatesToCellName(col2, fila2)
	if err != nil {
		h.err = err
		return
	}
	h.err = h.f.MergeCell(h.nombre, desde, hasta)
}

func (h *hoja) estilo(col1, fila1, col2, fila2, estiloID int) {
	if h.err != nil {
		return
	}
	desde, err := excelize.CoordinatesToCellName(col1, fila1)
	if err != nil {
		h.err = err
		return
	}
	hasta, err := excelize.CoordinatesToCellName(col2, fila2)
	if err != nil {
		h.err = err
		return
	}
	h.err = h.f.SetCellStyle(h.nombre, desde, hasta, estiloID)
}

// Render produce los bytes del libro xlsx.
func (r *Renderer) Render(c *inventory.Cuadricula) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", nombreHoja); err != nil {
		return nil, fmt.Errorf("hoja de reporte: %w", err)
	}

	estilos, err := nuevosEstilos(f)
	if err != nil {
		return nil, fmt.Errorf("estilos: %w", err)
	}

	h := &hoja{f: f, nombre: nombreHoja}
	colDemanda := colPrimerDia + c.Dias*3
	colStock := colDemanda + 1

	r.escribirTitulo(h, c, estilos, colStock)
	r.escribirEncabezados(h, c, estilos, colDemanda, colStock)
	filaFinal := r.escribirFilas(h, c, estilos, colDemanda, colStock)
	r.escribirPie(h, estilos, filaFinal)

	if err := r.ajustarPagina(f, c, colStock); err != nil {
		return nil, fmt.Errorf("configurar página: %w", err)
	}
	if h.err != nil {
		return nil, fmt.Errorf("armar cuadrícula: %w", h.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

type estilosReporte struct {
	titulo     int
	subtitulo  int
	encabezado int
	texto      int
	centro     int
	negrita    int
	pie        int
	firma      int
}

func nuevosEstilos(f *excelize.File) (*estilosReporte, error) {
	bordesFinos := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	centrado := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	e := &estilosReporte{}
	var err error
	if e.titulo, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Alignment: centrado,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	}); err != nil {
		return nil, err
	}
	if e.subtitulo, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}); err != nil {
		return nil, err
	}
	if e.encabezado, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: centrado,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Border:    bordesFinos,
	}); err != nil {
		return nil, err
	}
	if e.texto, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 9},
		Border: bordesFinos,
	}); err != nil {
		return nil, err
	}
	if e.centro, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 9},
		Alignment: centrado,
		Border:    bordesFinos,
	}); err != nil {
		return nil, err
	}
	if e.negrita, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: centrado,
		Border:    bordesFinos,
	}); err != nil {
		return nil, err
	}
	if e.pie, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 8}}); err != nil {
		return nil, err
	}
	if e.firma, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 9}}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Renderer) escribirTitulo(h *hoja, c *inventory.Cuadricula, e *estilosReporte, colStock int) {
	h.merge(1, 1, colStock, 1)
	h.set(1, 1, tituloBanda)
	h.estilo(1, 1, colStock, 1, e.titulo)
	if h.err == nil {
		h.err = h.f.SetRowHeight(nombreHoja, 1, 30)
	}

	periodo := "Semana"
	if c.Dias == report.DiasQuincenal {
		periodo = "Quincena"
	}
	h.set(1, 2, fmt.Sprintf("%s del %s al %s",
		periodo, c.FechaInicio.Format("02/01/2006"), c.FechaFin().Format("02/01/2006")))
	h.estilo(1, 2, 1, 2, e.subtitulo)
}

func (r *Renderer) escribirEncabezados(h *hoja, c *inventory.Cuadricula, e *estilosReporte, colDemanda, colStock int) {
	fijos := []string{"MEDICAMENTOS", "F. INGRESO", "F. VENC.", "STOCK INICIAL"}
	for i, titulo := range fijos {
		col := i + 1
		h.merge(col, filaEncabezado, col, filaEncabezado+1)
		h.set(col, filaEncabezado, titulo)
	}

	for d := 0; d < c.Dias; d++ {
		fecha := c.FechaInicio.AddDate(0, 0, d)
		col := colPrimerDia + d*3
		h.merge(col, filaEncabezado, col+2, filaEncabezado)
		h.set(col, filaEncabezado, fmt.Sprintf("%s\n%s", inventory.NombreDia(fecha), fecha.Format("02/01")))
		for t, turno := range inventory.Turnos {
			h.set(col+t, filaEncabezado+1, turno)
		}
	}

	h.merge(colDemanda, filaEncabezado, colDemanda, filaEncabezado+1)
	h.set(colDemanda, filaEncabezado, "DEMANDA TOTAL")
	h.merge(colStock, filaEncabezado, colStock, filaEncabezado+1)
	h.set(colStock, filaEncabezado, "STOCK ACTUAL")

	h.estilo(1, filaEncabezado, colStock, filaEncabezado+1, e.encabezado)
	if h.err == nil {
		h.err = h.f.SetRowHeight(nombreHoja, filaEncabezado, 35)
	}
	if h.err == nil {
		h.err = h.f.SetRowHeight(nombreHoja, filaEncabezado+1, 20)
	}
}

// escribirFilas vuelca las filas de medicamentos y devuelve la primera fila libre.
func (r *Renderer) escribirFilas(h *hoja, c *inventory.Cuadricula, e *estilosReporte, colDemanda, colStock int) int {
	fila := filaEncabezado + 2
	for _, fr := range c.Filas {
		h.set(1, fila, fr.Medicamento.Nombre)
		if fr.UltimoIngreso != "" {
			h.set(2, fila, fr.UltimoIngreso)
		}
		if fr.FechaVencimiento != "" {
			h.set(3, fila, fr.FechaVencimiento)
		}
		h.set(4, fila, fr.StockActual) // stock inicial del período = stock derivado

		for d := 0; d < c.Dias; d++ {
			for t := range inventory.Turnos {
				// Las celdas en cero quedan vacías, como en el registro físico.
				if cantidad := fr.Salidas[d][t]; cantidad > 0 {
					h.set(colPrimerDia+d*3+t, fila, cantidad)
				}
			}
		}

		h.set(colDemanda, fila, fr.DemandaTotal)
		h.set(colStock, fila, fr.StockActual)

		h.estilo(1, fila, 3, fila, e.texto)
		h.estilo(4, fila, colDemanda-1, fila, e.centro)
		h.estilo(colDemanda, fila, colStock, fila, e.negrita)
		fila++
	}
	return fila
}

func (r *Renderer) escribirPie(h *hoja, e *estilosReporte, fila int) {
	h.set(1, fila+1, "Observaciones: Los medicamentos deben ser seleccionados según necesidades del servicio")
	h.estilo(1, fila+1, 1, fila+1, e.pie)

	h.set(2, fila+3, "FIRMA RESPONSABLE:")
	h.estilo(2, fila+3, 2, fila+3, e.firma)
	h.set(2, fila+4, "_____________________")
}

func (r *Renderer) ajustarPagina(f *excelize.File, c *inventory.Cuadricula, colStock int) error {
	orientacion := "landscape"
	tamano := 1 // carta
	if err := f.SetPageLayout(nombreHoja, &excelize.PageLayoutOptions{
		Orientation: &orientacion,
		Size:        &tamano,
	}); err != nil {
		return err
	}

	lados := 0.5
	arribaAbajo := 0.75
	if err := f.SetPageMargins(nombreHoja, &excelize.PageLayoutMarginsOptions{
		Left: &lados, Right: &lados, Top: &arribaAbajo, Bottom: &arribaAbajo,
	}); err != nil {
		return err
	}

	anchos := []struct {
		col   string
		ancho float64
	}{{"A", 22}, {"B", 12}, {"C", 10}, {"D", 12}}
	for _, a := range anchos {
		if err := f.SetColWidth(nombreHoja, a.col, a.col, a.ancho); err != nil {
			return err
		}
	}
	primera, err := excelize.ColumnNumberToName(colPrimerDia)
	if err != nil {
		return err
	}
	ultima, err := excelize.ColumnNumberToName(colStock)
	if err != nil {
		return err
	}
	return f.SetColWidth(nombreHoja, primera, ultima, 5)
}
