package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
)

// MedicamentoUseCase casos de uso CRUD para el catálogo de medicamentos.
// El stock no se gestiona aquí: se deriva de los movimientos.
type MedicamentoUseCase struct {
	medRepo repository.MedicamentoRepository
	movRepo repository.MovimientoRepository
}

// NewMedicamentoUseCase construye el caso de uso.
func NewMedicamentoUseCase(medRepo repository.MedicamentoRepository, movRepo repository.MovimientoRepository) *MedicamentoUseCase {
	return &MedicamentoUseCase{medRepo: medRepo, movRepo: movRepo}
}

// Create registra un medicamento nuevo al final del orden del catálogo.
// El nombre es único tras normalizar acentos y mayúsculas.
func (uc *MedicamentoUseCase) Create(ctx context.Context, in dto.CreateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	stockMinimo := in.StockMinimo
	if stockMinimo == 0 {
		stockMinimo = entity.StockMinimoPorDefecto
	}
	if stockMinimo < 1 {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.medRepo.GetByNombre(ctx, entity.NormalizarNombre(nombre))
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	maxOrden, err := uc.medRepo.MaxOrden(ctx)
	if err != nil {
		return nil, err
	}

	med := &entity.Medicamento{
		ID:            uuid.New().String(),
		Nombre:        nombre,
		StockMinimo:   stockMinimo,
		Orden:         maxOrden + 1,
		FechaCreacion: time.Now(),
	}
	if err := uc.medRepo.Create(ctx, med); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(med), nil
}

// List devuelve el catálogo ordenado por orden.
func (uc *MedicamentoUseCase) List(ctx context.Context) ([]*dto.MedicamentoResponse, error) {
	meds, err := uc.medRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MedicamentoResponse, 0, len(meds))
	for _, med := range meds {
		out = append(out, toMedicamentoResponse(med))
	}
	return out, nil
}

// Update modifica nombre y/o stock mínimo. Devuelve (nil, nil) si no existe.
func (uc *MedicamentoUseCase) Update(ctx context.Context, id string, in dto.UpdateMedicamentoRequest) (*dto.MedicamentoResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo != nil && *in.StockMinimo < 1 {
		return nil, domain.ErrInvalidInput
	}

	med, err := uc.medRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, nil
	}

	// Un rename no puede chocar con otro medicamento del catálogo.
	if entity.NormalizarNombre(nombre) != entity.NormalizarNombre(med.Nombre) {
		existente, err := uc.medRepo.GetByNombre(ctx, entity.NormalizarNombre(nombre))
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}

	med.Nombre = nombre
	if in.StockMinimo != nil {
		med.StockMinimo = *in.StockMinimo
	}
	if err := uc.medRepo.Update(ctx, med); err != nil {
		return nil, err
	}
	return toMedicamentoResponse(med), nil
}

// Delete elimina un medicamento sin movimientos asociados. Si tiene movimientos
// devuelve domain.ErrConMovimientos junto con la cantidad encontrada.
func (uc *MedicamentoUseCase) Delete(ctx context.Context, id string) (movimientos int, err error) {
	med, err := uc.medRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if med == nil {
		return 0, domain.ErrNotFound
	}

	count, err := uc.movRepo.CountByMedicamento(ctx, id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, domain.ErrConMovimientos
	}
	return 0, uc.medRepo.Delete(ctx, id)
}

func toMedicamentoResponse(med *entity.Medicamento) *dto.MedicamentoResponse {
	return &dto.MedicamentoResponse{
		ID:            med.ID,
		Nombre:        med.Nombre,
		StockMinimo:   med.StockMinimo,
		Orden:         med.Orden,
		FechaCreacion: med.FechaCreacion,
	}
}
