package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/medicamentos-api/internal/application/dto"
	"github.com/tu-usuario/medicamentos-api/internal/application/usecase"
	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

func TestMedicamentoCreate_AsignaDefaultsYOrden(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(&entity.Medicamento{ID: "m1", Nombre: "Atropina", Orden: 4})
	uc := usecase.NewMedicamentoUseCase(medRepo, newFakeMovimientoRepo())

	out, err := uc.Create(context.Background(), dto.CreateMedicamentoRequest{Nombre: "  Dipirona  "})
	require.NoError(t, err)

	assert.Equal(t, "Dipirona", out.Nombre, "el nombre se guarda sin espacios sobrantes")
	assert.Equal(t, entity.StockMinimoPorDefecto, out.StockMinimo, "sin stock_minimo aplica el default 10")
	assert.Equal(t, 5, out.Orden, "el nuevo medicamento va al final del catálogo")
	assert.NotEmpty(t, out.ID)
}

func TestMedicamentoCreate_NombreVacioFalla(t *testing.T) {
	uc := usecase.NewMedicamentoUseCase(newFakeMedicamentoRepo(), newFakeMovimientoRepo())

	_, err := uc.Create(context.Background(), dto.CreateMedicamentoRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMedicamentoCreate_StockMinimoNegativoFalla(t *testing.T) {
	uc := usecase.NewMedicamentoUseCase(newFakeMedicamentoRepo(), newFakeMovimientoRepo())

	_, err := uc.Create(context.Background(), dto.CreateMedicamentoRequest{Nombre: "Dipirona", StockMinimo: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La unicidad ignora acentos, mayúsculas y espacios repetidos: "ácido VALPROICO"
// es el mismo medicamento que "Acido valproico".
func TestMedicamentoCreate_DuplicadoNormalizado(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(&entity.Medicamento{ID: "m1", Nombre: "Acido valproico"})
	uc := usecase.NewMedicamentoUseCase(medRepo, newFakeMovimientoRepo())

	_, err := uc.Create(context.Background(), dto.CreateMedicamentoRequest{Nombre: "ácido  VALPROICO"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestMedicamentoUpdate_NoExisteDevuelveNilNil(t *testing.T) {
	uc := usecase.NewMedicamentoUseCase(newFakeMedicamentoRepo(), newFakeMovimientoRepo())

	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateMedicamentoRequest{Nombre: "X"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMedicamentoUpdate_RenameAChocaConOtro(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(
		&entity.Medicamento{ID: "m1", Nombre: "Atropina"},
		&entity.Medicamento{ID: "m2", Nombre: "Dipirona"},
	)
	uc := usecase.NewMedicamentoUseCase(medRepo, newFakeMovimientoRepo())

	_, err := uc.Update(context.Background(), "m1", dto.UpdateMedicamentoRequest{Nombre: "dipirona"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Renombrar a una variante del propio nombre (cambio de mayúsculas) no es
// conflicto consigo mismo.
func TestMedicamentoUpdate_RenameASiMismoPermitido(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(&entity.Medicamento{ID: "m1", Nombre: "atropina", StockMinimo: 10})
	uc := usecase.NewMedicamentoUseCase(medRepo, newFakeMovimientoRepo())

	nuevoMinimo := 20
	out, err := uc.Update(context.Background(), "m1", dto.UpdateMedicamentoRequest{Nombre: "Atropina", StockMinimo: &nuevoMinimo})
	require.NoError(t, err)
	assert.Equal(t, "Atropina", out.Nombre)
	assert.Equal(t, 20, out.StockMinimo)
}

func TestMedicamentoDelete_SinMovimientos(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(&entity.Medicamento{ID: "m1", Nombre: "Atropina"})
	uc := usecase.NewMedicamentoUseCase(medRepo, newFakeMovimientoRepo())

	_, err := uc.Delete(context.Background(), "m1")
	require.NoError(t, err)

	med, _ := medRepo.GetByID(context.Background(), "m1")
	assert.Nil(t, med, "el medicamento debe quedar eliminado")
}

func TestMedicamentoDelete_BloqueadoConMovimientos(t *testing.T) {
	medRepo := newFakeMedicamentoRepo(&entity.Medicamento{ID: "m1", Nombre: "Atropina"})
	movRepo := newFakeMovimientoRepo(
		&entity.Movimiento{ID: "v1", MedicamentoID: "m1", Tipo: entity.MovimientoIngreso, Fecha: "2025-06-01", Cantidad: 10},
		&entity.Movimiento{ID: "v2", MedicamentoID: "m1", Tipo: entity.MovimientoSalida, Fecha: "2025-06-02", Cantidad: 2},
	)
	uc := usecase.NewMedicamentoUseCase(medRepo, movRepo)

	movimientos, err := uc.Delete(context.Background(), "m1")
	assert.ErrorIs(t, err, domain.ErrConMovimientos)
	assert.Equal(t, 2, movimientos, "debe reportar cuántos movimientos lo bloquean")

	med, _ := medRepo.GetByID(context.Background(), "m1")
	assert.NotNil(t, med, "el medicamento no debe borrarse")
}

func TestMedicamentoDelete_NoExiste(t *testing.T) {
	uc := usecase.NewMedicamentoUseCase(newFakeMedicamentoRepo(), newFakeMovimientoRepo())

	_, err := uc.Delete(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
