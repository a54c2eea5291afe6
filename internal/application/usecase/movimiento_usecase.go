package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
)

// SalidaSinStockError detalla el rechazo de una SALIDA por stock insuficiente.
// Envuelve domain.ErrStockInsuficiente para errors.Is.
type SalidaSinStockError struct {
	StockActual        int
	CantidadSolicitada int
}

func (e *SalidaSinStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: actual %d, solicitado %d", e.StockActual, e.CantidadSolicitada)
}

func (e *SalidaSinStockError) Unwrap() error { return domain.ErrStockInsuficiente }

// MovimientoUseCase casos de uso CRUD para movimientos de stock.
type MovimientoUseCase struct {
	medRepo repository.MedicamentoRepository
	movRepo repository.MovimientoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(medRepo repository.MedicamentoRepository, movRepo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{medRepo: medRepo, movRepo: movRepo}
}

// Registrar valida e inserta un movimiento. Las SALIDAs pasan por la
// verificación transaccional de stock del repositorio: si la cantidad supera el
// stock derivado se devuelve *SalidaSinStockError y no se inserta nada.
func (uc *MovimientoUseCase) Registrar(ctx context.Context, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.MedicamentoID == "" || in.Fecha == "" || in.Cantidad == 0 || !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	if in.Cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := entity.ValidarFecha(in.Fecha); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TurnoValido(in.Turno) {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaVencimiento != "" {
		if err := entity.ValidarFecha(in.FechaVencimiento); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	med, err := uc.medRepo.GetByID(ctx, in.MedicamentoID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}

	mov := &entity.Movimiento{
		ID:               uuid.New().String(),
		MedicamentoID:    in.MedicamentoID,
		Tipo:             in.Tipo,
		Fecha:            in.Fecha,
		Cantidad:         in.Cantidad,
		Turno:            in.Turno,
		FechaVencimiento: in.FechaVencimiento,
		Observaciones:    in.Observaciones,
		FechaRegistro:    time.Now(),
	}

	if mov.Tipo == entity.MovimientoSalida {
		stockActual, err := uc.movRepo.CreateSalida(ctx, mov)
		if err != nil {
			if errors.Is(err, domain.ErrStockInsuficiente) {
				return nil, &SalidaSinStockError{StockActual: stockActual, CantidadSolicitada: mov.Cantidad}
			}
			return nil, err
		}
	} else if err := uc.movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}

	return uc.toResponse(mov, med.Nombre), nil
}

// Listar devuelve los movimientos más recientes con el nombre del medicamento
// resuelto. Los movimientos huérfanos se reportan como "Desconocido".
func (uc *MovimientoUseCase) Listar(ctx context.Context, limit int) ([]*dto.MovimientoResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	movs, err := uc.movRepo.ListRecientes(ctx, limit)
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

	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, mov := range movs {
		nombre, ok := nombres[mov.MedicamentoID]
		if !ok {
			nombre = "Desconocido"
		}
		out = append(out, uc.toResponse(mov, nombre))
	}
	return out, nil
}

// Actualizar modifica cantidad, fecha y turno de un movimiento existente.
// Devuelve (nil, nil) si no existe. No re-verifica stock: el registro histórico
// se corrige tal cual, sin conservar auditoría del valor anterior.
func (uc *MovimientoUseCase) Actualizar(ctx context.Context, id string, in dto.UpdateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if in.Cantidad < 1 || in.Fecha == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := entity.ValidarFecha(in.Fecha); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TurnoValido(in.Turno) {
		return nil, domain.ErrInvalidInput
	}

	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}

	mov.Cantidad = in.Cantidad
	mov.Fecha = in.Fecha
	if in.Turno != "" {
		mov.Turno = in.Turno
	}
	if err := uc.movRepo.Update(ctx, mov); err != nil {
		return nil, err
	}
	return uc.toResponse(mov, ""), nil
}

// Eliminar borra un movimiento. Devuelve domain.ErrNotFound si no existe.
func (uc *MovimientoUseCase) Eliminar(ctx context.Context, id string) error {
	mov, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.Delete(ctx, id)
}

func (uc *MovimientoUseCase) toResponse(mov *entity.Movimiento, nombre string) *dto.MovimientoResponse {
	return &dto.MovimientoResponse{
		ID:                mov.ID,
		MedicamentoID:     mov.MedicamentoID,
		MedicamentoNombre: nombre,
		Tipo:              mov.Tipo,
		Fecha:             mov.Fecha,
		Cantidad:          mov.Cantidad,
		Turno:             mov.Turno,
		FechaVencimiento:  mov.FechaVencimiento,
		Observaciones:     mov.Observaciones,
		FechaRegistro:     mov.FechaRegistro,
	}
}
