package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Category string

const (
	CategoryAlimentacion    Category = "Alimentación"
	CategoryRestaurantes    Category = "Restaurantes"
	CategoryTransporte      Category = "Transporte"
	CategoryServicios       Category = "Servicios"
	CategoryHogar           Category = "Hogar"
	CategoryEntretenimiento Category = "Entretenimiento"
	CategorySalud           Category = "Salud"
	CategoryOtros           Category = "Otros"
)

var Categories = []Category{
	CategoryAlimentacion,
	CategoryRestaurantes,
	CategoryTransporte,
	CategoryServicios,
	CategoryHogar,
	CategoryEntretenimiento,
	CategorySalud,
	CategoryOtros,
}

var categoryIndex = func() map[string]Category {
	idx := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		idx[foldCategory(string(c))] = c
	}
	return idx
}()

// ParseCategory matches s against the category set ignoring case and
// accents. Unknown non-empty names fall into Otros; ok is false only for
// blank input.
func ParseCategory(s string) (c Category, ok bool) {
	key := foldCategory(s)
	if key == "" {
		return "", false
	}
	if c, found := categoryIndex[key]; found {
		return c, true
	}
	return CategoryOtros, true
}

func foldCategory(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}

const DefaultConfidence = 0.8

// ReceiptExtraction is the shaped result of a receipt-parse call. Nil
// pointers are fields the model could not extract.
type ReceiptExtraction struct {
	Amount     *float64
	Merchant   *string
	Date       *string // YYYY-MM-DD
	Category   *Category
	Confidence float64
}
