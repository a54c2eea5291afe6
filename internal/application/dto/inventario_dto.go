package dto

import "github.com/shopspring/decimal"

// UltimoIngresoDTO fecha y lote del ingreso más reciente de un medicamento.
type UltimoIngresoDTO struct {
	Fecha string `json:"fecha"`
	Lote  string `json:"lote,omitempty"` // observaciones del ingreso
}

// InventarioItemResponse fila del snapshot GET /api/inventario.
type InventarioItemResponse struct {
	ID            string            `json:"id"`
	Nombre        string            `json:"nombre"`
	StockActual   int               `json:"stock_actual"`
	StockMinimo   int               `json:"stock_minimo"`
	Estado        string            `json:"estado"` // AGOTADO, CRITICO, BAJO, OK
	UltimoIngreso *UltimoIngresoDTO `json:"ultimo_ingreso"`
	EgresosMes    int               `json:"egresos_mes"` // salidas del mes calendario en curso
}

// EstadisticasResponse respuesta de GET /api/estadisticas.
type EstadisticasResponse struct {
	TotalMedicamentos int `json:"total_medicamentos"`
	AlertasStockBajo  int `json:"alertas_stock_bajo"` // medicamentos con stock <= mínimo
	MovimientosHoy    int `json:"movimientos_hoy"`
}

// DemandaItemResponse fila del ranking GET /api/analisis/demanda.
type DemandaItemResponse struct {
	Nombre          string          `json:"nombre"`
	TotalDispensado int             `json:"total_dispensado"`
	Frecuencia      int             `json:"frecuencia"`
	PromedioDiario  decimal.Decimal `json:"promedio_diario"`
}
