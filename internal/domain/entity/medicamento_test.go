package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

func TestNormalizarNombre(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Atropina", "atropina"},
		{"ÁCIDO VALPROICO", "acido valproico"},
		{"  Gluconato   de  calcio  ", "gluconato de calcio"},
		{"Dexametazona", "dexametazona"},
		{"Niño", "nino"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, entity.NormalizarNombre(c.entrada), "entrada %q", c.entrada)
	}
}

// Dos escrituras distintas del mismo medicamento deben colisionar.
func TestNormalizarNombre_VariantesColisionan(t *testing.T) {
	assert.Equal(t,
		entity.NormalizarNombre("Ácido  Valproico"),
		entity.NormalizarNombre("acido valproico"))
}

func TestTipoYTurnoValidos(t *testing.T) {
	assert.True(t, entity.TipoValido(entity.MovimientoIngreso))
	assert.True(t, entity.TipoValido(entity.MovimientoSalida))
	assert.False(t, entity.TipoValido("AJUSTE"))
	assert.False(t, entity.TipoValido("ingreso"), "los tipos distinguen mayúsculas")

	assert.True(t, entity.TurnoValido(""))
	assert.True(t, entity.TurnoValido(entity.TurnoManana))
	assert.True(t, entity.TurnoValido(entity.TurnoTarde))
	assert.True(t, entity.TurnoValido(entity.TurnoNoche))
	assert.False(t, entity.TurnoValido("X"))
}

func TestValidarFecha(t *testing.T) {
	assert.NoError(t, entity.ValidarFecha("2025-06-02"))
	assert.Error(t, entity.ValidarFecha("02/06/2025"))
	assert.Error(t, entity.ValidarFecha("2025-13-01"))
	assert.Error(t, entity.ValidarFecha(""))
}
