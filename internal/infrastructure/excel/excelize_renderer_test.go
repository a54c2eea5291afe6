package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
	"github.com/tu-usuario/medicamentos-api/internal/infrastructure/excel"
)

func cuadriculaDePrueba(t *testing.T, dias int) *inventory.Cuadricula {
	t.Helper()
	inicio, err := time.Parse(entity.FormatoFecha, "2025-06-02")
	require.NoError(t, err)

	meds := []*entity.Medicamento{
		{ID: "m1", Nombre: "Atropina", StockMinimo: 10, Orden: 0},
		{ID: "m2", Nombre: "Dipirona", StockMinimo: 10, Orden: 1},
	}
	movs := map[string][]*entity.Movimiento{
		"m1": {
			{MedicamentoID: "m1", Tipo: entity.MovimientoIngreso, Fecha: "2025-06-01", Cantidad: 40, FechaVencimiento: "2026-01-31"},
			{MedicamentoID: "m1", Tipo: entity.MovimientoSalida, Fecha: "2025-06-02", Cantidad: 3, Turno: entity.TurnoManana},
			{MedicamentoID: "m1", Tipo: entity.MovimientoSalida, Fecha: "2025-06-04", Cantidad: 2, Turno: entity.TurnoNoche},
		},
	}
	return inventory.ConstruirCuadricula(meds, movs, inicio, dias)
}

// Render produce un xlsx que excelize puede reabrir, con el título, los
// encabezados fijos y los valores derivados en las celdas correctas.
func TestRender_SemanalReabreConValores(t *testing.T) {
	contenido, err := excel.NewRenderer().Render(cuadriculaDePrueba(t, 7))
	require.NoError(t, err)
	require.NotEmpty(t, contenido)

	f, err := excelize.OpenReader(bytes.NewReader(contenido))
	require.NoError(t, err, "el documento generado debe ser un xlsx válido")
	defer f.Close()

	require.Contains(t, f.GetSheetList(), "Reporte")

	titulo, err := f.GetCellValue("Reporte", "A1")
	require.NoError(t, err)
	assert.Equal(t, "REGISTRO DE MEDICAMENTOS DEL CARRO DE URGENCIAS", titulo)

	// Encabezados fijos de la fila 4
	for celda, esperado := range map[string]string{
		"A4": "MEDICAMENTOS",
		"B4": "F. INGRESO",
		"C4": "F. VENC.",
		"D4": "STOCK INICIAL",
	} {
		v, err := f.GetCellValue("Reporte", celda)
		require.NoError(t, err)
		assert.Equal(t, esperado, v, "celda %s", celda)
	}

	// Subcolumnas de turno del primer día (E5:G5)
	for celda, esperado := range map[string]string{"E5": "M", "F5": "T", "G5": "N"} {
		v, _ := f.GetCellValue("Reporte", celda)
		assert.Equal(t, esperado, v, "celda %s", celda)
	}

	// Fila de Atropina (fila 6): fechas, stock y salidas por turno
	fila := map[string]string{
		"A6": "Atropina",
		"B6": "2025-06-01",
		"C6": "2026-01-31",
		"D6": "35",          // stock derivado: 40 - 3 - 2
		"E6": "3",           // lunes turno M
		"F6": "",            // celda en cero queda vacía
	}
	for celda, esperado := range fila {
		v, _ := f.GetCellValue("Reporte", celda)
		assert.Equal(t, esperado, v, "celda %s", celda)
	}

	// Columnas de totales: 7 días * 3 turnos tras la columna D
	demanda, _ := f.GetCellValue("Reporte", "Z6") // col 26 = 4 + 21 + 1
	assert.Equal(t, "5", demanda, "demanda total de la semana")
	stock, _ := f.GetCellValue("Reporte", "AA6")
	assert.Equal(t, "35", stock, "stock actual")

	// Dipirona sin movimientos: fila presente con stock 0
	nombre, _ := f.GetCellValue("Reporte", "A7")
	assert.Equal(t, "Dipirona", nombre)
	stockCero, _ := f.GetCellValue("Reporte", "D7")
	assert.Equal(t, "0", stockCero)
}

func TestRender_QuincenalDesplazaTotales(t *testing.T) {
	contenido, err := excel.NewRenderer().Render(cuadriculaDePrueba(t, 15))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(contenido))
	require.NoError(t, err)
	defer f.Close()

	// 15 días * 3 turnos: demanda en columna 4+45+1 = 50 (AX)
	celdaDemanda, err := excelize.CoordinatesToCellName(50, 4)
	require.NoError(t, err)
	v, _ := f.GetCellValue("Reporte", celdaDemanda)
	assert.Equal(t, "DEMANDA TOTAL", v)

	celdaStock, err := excelize.CoordinatesToCellName(51, 4)
	require.NoError(t, err)
	v, _ = f.GetCellValue("Reporte", celdaStock)
	assert.Equal(t, "STOCK ACTUAL", v)
}
