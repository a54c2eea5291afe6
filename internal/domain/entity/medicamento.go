package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StockMinimoPorDefecto se aplica cuando el registro no especifica uno.
const StockMinimoPorDefecto = 10

// Medicamento representa un medicamento del carro de urgencias.
// El stock nunca se persiste: se deriva de los movimientos (ver domain/inventory).
type Medicamento struct {
	ID            string
	Nombre        string
	StockMinimo   int
	Orden         int // posición en listados y reportes
	FechaCreacion time.Time
}

// quitarDiacriticos elimina marcas de acento (NFD + descarte de la categoría Mn).
var quitarDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizarNombre devuelve la forma canónica del nombre para comparar duplicados:
// sin acentos, en minúsculas y sin espacios sobrantes. "Ácido  Valproico" y
// "acido valproico" son el mismo medicamento.
func NormalizarNombre(nombre string) string {
	s, _, err := transform.String(quitarDiacriticos, nombre)
	if err != nil {
		s = nombre
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
