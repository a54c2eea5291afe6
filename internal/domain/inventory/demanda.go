package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

// topDemanda es el tamaño del ranking que devuelve AnalizarDemanda.
const topDemanda = 10

// DemandaMedicamento es una fila del ranking de demanda.
type DemandaMedicamento struct {
	MedicamentoID   string
	Nombre          string
	TotalDispensado int             // unidades SALIDA dentro de la ventana
	Frecuencia      int             // número de salidas dentro de la ventana
	PromedioDiario  decimal.Decimal // TotalDispensado / días, redondeado a 2 decimales
}

// AnalizarDemanda agrega las SALIDAs con fecha >= desde ("2006-01-02"), agrupadas
// por medicamento. Ordena descendente por total dispensado; el empate se resuelve
// por ID de medicamento ascendente para que el ranking sea determinista. Devuelve
// como máximo las 10 primeras filas. Los movimientos de medicamentos que ya no
// existen en el catálogo se descartan.
func AnalizarDemanda(movs []*entity.Movimiento, nombres map[string]string, desde string, dias int) []DemandaMedicamento {
	if dias <= 0 {
		return nil
	}

	acumulado := make(map[string]*DemandaMedicamento)
	for _, m := range movs {
		if m.Tipo != entity.MovimientoSalida || m.Fecha < desde {
			continue
		}
		nombre, ok := nombres[m.MedicamentoID]
		if !ok {
			continue
		}
		fila, ok := acumulado[m.MedicamentoID]
		if !ok {
			fila = &DemandaMedicamento{MedicamentoID: m.MedicamentoID, Nombre: nombre}
			acumulado[m.MedicamentoID] = fila
		}
		fila.TotalDispensado += m.Cantidad
		fila.Frecuencia++
	}

	divisor := decimal.NewFromInt(int64(dias))
	resultado := make([]DemandaMedicamento, 0, len(acumulado))
	for _, fila := range acumulado {
		fila.PromedioDiario = decimal.NewFromInt(int64(fila.TotalDispensado)).Div(divisor).Round(2)
		resultado = append(resultado, *fila)
	}

	sort.Slice(resultado, func(i, j int) bool {
		if resultado[i].TotalDispensado != resultado[j].TotalDispensado {
			return resultado[i].TotalDispensado > resultado[j].TotalDispensado
		}
		return resultado[i].MedicamentoID < resultado[j].MedicamentoID
	})

	if len(resultado) > topDemanda {
		resultado = resultado[:topDemanda]
	}
	return resultado
}
