package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
	"github.com/tu-usuario/medicamentos-api/pkg/logger"
)

// InventarioUseCase consultas derivadas del libro de movimientos: snapshot de
// inventario, estadísticas generales y análisis de demanda. Solo lecturas.
type InventarioUseCase struct {
	medRepo repository.MedicamentoRepository
	movRepo repository.MovimientoRepository
	log     *logger.Logger
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(medRepo repository.MedicamentoRepository, movRepo repository.MovimientoRepository, log *logger.Logger) *InventarioUseCase {
	return &InventarioUseCase{medRepo: medRepo, movRepo: movRepo, log: log}
}

// Snapshot arma el inventario completo: stock derivado, estado por bandas,
// último ingreso y egresos del mes en curso para cada medicamento del catálogo.
//
// Si la consulta de movimientos de un medicamento falla, la fila se calcula
// como si no tuviera movimientos (stock 0) y se deja un warning en el log: una
// caída parcial del almacén se trata como "sin datos", no como error duro.
func (uc *InventarioUseCase) Snapshot(ctx context.Context) ([]*dto.InventarioItemResponse, error) {
	meds, err := uc.medRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	hoy := time.Now()
	primerDia := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
	ultimoDia := primerDia.AddDate(0, 1, -1)
	desde := primerDia.Format(entity.FormatoFecha)
	hasta := ultimoDia.Format(entity.FormatoFecha)

	out := make([]*dto.InventarioItemResponse, 0, len(meds))
	for _, med := range meds {
		movs, err := uc.movRepo.ListByMedicamento(ctx, med.ID)
		if err != nil {
			uc.log.Warn().Err(err).Str("medicamento_id", med.ID).
				Msg("movimientos no disponibles, la fila se calcula sin datos")
			movs = nil
		}

		stock := inventory.StockActual(movs)
		item := &dto.InventarioItemResponse{
			ID:          med.ID,
			Nombre:      med.Nombre,
			StockActual: stock,
			StockMinimo: med.StockMinimo,
			Estado:      string(inventory.ClasificarEstado(stock, med.StockMinimo)),
			EgresosMes:  inventory.SalidasEnRango(movs, desde, hasta),
		}
		if ing := inventory.UltimoIngreso(movs); ing != nil {
			item.UltimoIngreso = &dto.UltimoIngresoDTO{Fecha: ing.Fecha, Lote: ing.Observaciones}
		}
		out = append(out, item)
	}
	return out, nil
}

// Estadisticas construye los contadores generales del panel.
//
// Tres consultas en paralelo (patrón del dashboard):
//  1. Count de medicamentos
//  2. Alertas: medicamentos con stock derivado <= mínimo
//  3. Movimientos con fecha de hoy
func (uc *InventarioUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	type countResult struct {
		n   int
		err error
	}

	totalCh := make(chan countResult, 1)
	alertasCh := make(chan countResult, 1)
	hoyCh := make(chan countResult, 1)

	go func() {
		n, err := uc.medRepo.Count(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.contarAlertas(ctx)
		alertasCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.movRepo.CountByFecha(ctx, time.Now().Format(entity.FormatoFecha))
		hoyCh <- countResult{n, err}
	}()

	total := <-totalCh
	alertas := <-alertasCh
	hoy := <-hoyCh

	if total.err != nil {
		return nil, total.err
	}
	if alertas.err != nil {
		return nil, alertas.err
	}
	if hoy.err != nil {
		return nil, hoy.err
	}

	return &dto.EstadisticasResponse{
		TotalMedicamentos: total.n,
		AlertasStockBajo:  alertas.n,
		MovimientosHoy:    hoy.n,
	}, nil
}

func (uc *InventarioUseCase) contarAlertas(ctx context.Context) (int, error) {
	meds, err := uc.medRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	alertas := 0
	for _, med := range meds {
		movs, err := uc.movRepo.ListByMedicamento(ctx, med.ID)
		if err != nil {
			return 0, err
		}
		if inventory.StockActual(movs) <= med.StockMinimo {
			alertas++
		}
	}
	return alertas, nil
}

// Demanda arma el ranking de demanda de los últimos dias días (top 10).
func (uc *InventarioUseCase) Demanda(ctx context.Context, dias int) ([]*dto.DemandaItemResponse, error) {
	if dias <= 0 {
		dias = 30
	}

	salidas, err := uc.movRepo.ListByTipo(ctx, entity.MovimientoSalida)
	if err != nil {
		return nil, err
	}
	meds, err := uc.medRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string, len(meds))
	for _, med := range meds {
		nombres[med.ID] = med.Nombre
	}

	desde := time.Now().AddDate(0, 0, -dias).Format(entity.FormatoFecha)
	ranking := inventory.AnalizarDemanda(salidas, nombres, desde, dias)

	out := make([]*dto.DemandaItemResponse, 0, len(ranking))
	for _, fila := range ranking {
		out = append(out, &dto.DemandaItemResponse{
			Nombre:          fila.Nombre,
			TotalDispensado: fila.TotalDispensado,
			Frecuencia:      fila.Frecuencia,
			PromedioDiario:  fila.PromedioDiario,
		})
	}
	return out, nil
}
