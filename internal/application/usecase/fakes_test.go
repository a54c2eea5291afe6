package usecase_test

import (
	"context"
	"sort"

	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repos de Firestore: (nil, nil) para no-encontrado y verificación de stock
// dentro de CreateSalida.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedicamentoRepo struct {
	meds map[string]*entity.Medicamento
}

func newFakeMedicamentoRepo(meds ...*entity.Medicamento) *fakeMedicamentoRepo {
	r := &fakeMedicamentoRepo{meds: make(map[string]*entity.Medicamento)}
	for _, m := range meds {
		copia := *m
		r.meds[m.ID] = &copia
	}
	return r
}

func (r *fakeMedicamentoRepo) Create(_ context.Context, med *entity.Medicamento) error {
	copia := *med
	r.meds[med.ID] = &copia
	return nil
}

func (r *fakeMedicamentoRepo) GetByID(_ context.Context, id string) (*entity.Medicamento, error) {
	med, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	copia := *med
	return &copia, nil
}

func (r *fakeMedicamentoRepo) GetByNombre(_ context.Context, nombreNormalizado string) (*entity.Medicamento, error) {
	for _, med := range r.meds {
		if entity.NormalizarNombre(med.Nombre) == nombreNormalizado {
			copia := *med
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeMedicamentoRepo) List(_ context.Context) ([]*entity.Medicamento, error) {
	out := make([]*entity.Medicamento, 0, len(r.meds))
	for _, med := range r.meds {
		copia := *med
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out, nil
}

func (r *fakeMedicamentoRepo) Update(_ context.Context, med *entity.Medicamento) error {
	copia := *med
	r.meds[med.ID] = &copia
	return nil
}

func (r *fakeMedicamentoRepo) Delete(_ context.Context, id string) error {
	delete(r.meds, id)
	return nil
}

func (r *fakeMedicamentoRepo) MaxOrden(_ context.Context) (int, error) {
	max := 0
	for _, med := range r.meds {
		if med.Orden > max {
			max = med.Orden
		}
	}
	return max, nil
}

func (r *fakeMedicamentoRepo) Count(_ context.Context) (int, error) {
	return len(r.meds), nil
}

type fakeMovimientoRepo struct {
	movs map[string]*entity.Movimiento
}

func newFakeMovimientoRepo(movs ...*entity.Movimiento) *fakeMovimientoRepo {
	r := &fakeMovimientoRepo{movs: make(map[string]*entity.Movimiento)}
	for _, m := range movs {
		copia := *m
		r.movs[m.ID] = &copia
	}
	return r
}

func (r *fakeMovimientoRepo) Create(_ context.Context, mov *entity.Movimiento) error {
	copia := *mov
	r.movs[mov.ID] = &copia
	return nil
}

func (r *fakeMovimientoRepo) CreateSalida(ctx context.Context, mov *entity.Movimiento) (int, error) {
	delMed, _ := r.ListByMedicamento(ctx, mov.MedicamentoID)
	stock := inventory.StockActual(delMed)
	if stock < mov.Cantidad {
		return stock, domain.ErrStockInsuficiente
	}
	return stock, r.Create(ctx, mov)
}

func (r *fakeMovimientoRepo) GetByID(_ context.Context, id string) (*entity.Movimiento, error) {
	mov, ok := r.movs[id]
	if !ok {
		return nil, nil
	}
	copia := *mov
	return &copia, nil
}

func (r *fakeMovimientoRepo) Update(_ context.Context, mov *entity.Movimiento) error {
	copia := *mov
	r.movs[mov.ID] = &copia
	return nil
}

func (r *fakeMovimientoRepo) Delete(_ context.Context, id string) error {
	delete(r.movs, id)
	return nil
}

func (r *fakeMovimientoRepo) ListRecientes(_ context.Context, limit int) ([]*entity.Movimiento, error) {
	out := make([]*entity.Movimiento, 0, len(r.movs))
	for _, mov := range r.movs {
		copia := *mov
		out = append(out, &copia)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaRegistro.After(out[j].FechaRegistro) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovimientoRepo) ListByMedicamento(_ context.Context, medicamentoID string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, mov := range r.movs {
		if mov.MedicamentoID == medicamentoID {
			copia := *mov
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeMovimientoRepo) ListByTipo(_ context.Context, tipo string) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, mov := range r.movs {
		if mov.Tipo == tipo {
			copia := *mov
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeMovimientoRepo) CountByMedicamento(_ context.Context, medicamentoID string) (int, error) {
	n := 0
	for _, mov := range r.movs {
		if mov.MedicamentoID == medicamentoID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovimientoRepo) CountByFecha(_ context.Context, fecha string) (int, error) {
	n := 0
	for _, mov := range r.movs {
		if mov.Fecha == fecha {
			n++
		}
	}
	return n, nil
}
