package inventory

import (
	"time"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

// Turnos en el orden de las subcolumnas del reporte.
var Turnos = [3]string{entity.TurnoManana, entity.TurnoTarde, entity.TurnoNoche}

// nombresDia abreviaturas en español indexadas por time.Weekday (domingo = 0).
var nombresDia = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// NombreDia abreviatura en español del día de la semana.
func NombreDia(t time.Time) string {
	return nombresDia[t.Weekday()]
}

// FilaReporte es la fila de un medicamento en la cuadrícula de reporte.
type FilaReporte struct {
	Medicamento      *entity.Medicamento
	UltimoIngreso    string // fecha "2006-01-02" del ingreso más reciente, vacío si no hay
	FechaVencimiento string // vencimiento de ese ingreso, vacío si no registra
	// Salidas[d][t]: unidades dispensadas el día d (desde FechaInicio) en el turno t
	// (orden de Turnos). Las salidas sin turno no aparecen en la celda pero sí en
	// SalidasPorDia y DemandaTotal.
	Salidas       [][3]int
	SalidasPorDia []int // unidades dispensadas por día, todos los turnos
	DemandaTotal  int   // Σ SALIDA dentro de la ventana
	StockActual   int   // stock derivado al momento de generar el reporte
}

// Cuadricula es el modelo de datos de los reportes semanal/quincenal: una fila
// por medicamento, Dias×3 celdas de demanda por turno más columnas de totales.
// Es presentación-agnóstica; los renderers de Excel y PDF la consumen tal cual.
type Cuadricula struct {
	FechaInicio time.Time
	Dias        int // 7 (semanal) o 15 (quincenal)
	Filas       []FilaReporte
}

// FechaFin último día del rango, inclusive.
func (c *Cuadricula) FechaFin() time.Time {
	return c.FechaInicio.AddDate(0, 0, c.Dias-1)
}

// ConstruirCuadricula arma la cuadrícula para el rango [inicio, inicio+dias-1].
// movsPorMed trae los movimientos de cada medicamento por ID; los medicamentos
// conservan el orden recibido (campo orden del catálogo). Cada fila tiene
// exactamente dias×3 celdas aunque no existan movimientos.
func ConstruirCuadricula(meds []*entity.Medicamento, movsPorMed map[string][]*entity.Movimiento, inicio time.Time, dias int) *Cuadricula {
	desde := inicio.Format(entity.FormatoFecha)
	hasta := inicio.AddDate(0, 0, dias-1).Format(entity.FormatoFecha)

	c := &Cuadricula{FechaInicio: inicio, Dias: dias, Filas: make([]FilaReporte, 0, len(meds))}
	for _, med := range meds {
		movs := movsPorMed[med.ID]
		fila := FilaReporte{
			Medicamento:   med,
			Salidas:       make([][3]int, dias),
			SalidasPorDia: make([]int, dias),
			StockActual:   StockActual(movs),
			DemandaTotal:  SalidasEnRango(movs, desde, hasta),
		}
		if ing := UltimoIngreso(movs); ing != nil {
			fila.UltimoIngreso = ing.Fecha
			fila.FechaVencimiento = ing.FechaVencimiento
		}

		porFecha := make(map[string]int, dias)
		for d := 0; d < dias; d++ {
			porFecha[inicio.AddDate(0, 0, d).Format(entity.FormatoFecha)] = d
		}
		for _, m := range movs {
			if m.Tipo != entity.MovimientoSalida {
				continue
			}
			d, ok := porFecha[m.Fecha]
			if !ok {
				continue
			}
			fila.SalidasPorDia[d] += m.Cantidad
			for t, turno := range Turnos {
				if m.Turno == turno {
					fila.Salidas[d][t] += m.Cantidad
					break
				}
			}
		}
		c.Filas = append(c.Filas, fila)
	}
	return c
}
