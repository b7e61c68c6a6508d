package domain

import "strings"

// Category es una de las cuatro dimensiones DISC. Es un conjunto cerrado:
// cualquier valor fuera de las cuatro constantes se rechaza en ParseCategory.
type Category string

const (
	CategoryD Category = "D"
	CategoryI Category = "I"
	CategoryS Category = "S"
	CategoryC Category = "C"
)

// Categories fija el orden de prioridad D > I > S > C. El scoring itera este
// arreglo para resolver empates, asi que el orden aqui es parte del contrato.
var Categories = [4]Category{CategoryD, CategoryI, CategoryS, CategoryC}

// ParseCategory normaliza un valor crudo (mayusculas, sin espacios) y valida
// que pertenezca al conjunto cerrado. La normalizacion ocurre solo aqui; el
// resto del codigo trabaja con Category ya validada.
func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategoryD:
		return CategoryD, true
	case CategoryI:
		return CategoryI, true
	case CategoryS:
		return CategoryS, true
	case CategoryC:
		return CategoryC, true
	}
	return "", false
}

// LabelSet mapea cada categoria a su etiqueta de animal visible al usuario.
type LabelSet map[Category]string

// Etiquetas en tailandes (texto original del test) e ingles.
var (
	ThaiLabels = LabelSet{
		CategoryD: "กระทิง (Dominance)",
		CategoryI: "อินทรี (Influence)",
		CategoryS: "หนู (Steadiness)",
		CategoryC: "หมี (Compliance)",
	}
	EnglishLabels = LabelSet{
		CategoryD: "Bull (Dominance)",
		CategoryI: "Eagle (Influence)",
		CategoryS: "Rat (Steadiness)",
		CategoryC: "Bear (Compliance)",
	}
)

// LabelsFor devuelve el set de etiquetas para un locale ("th" o "en").
// Cualquier otro valor cae al tailandes, el idioma original del producto.
func LabelsFor(locale string) LabelSet {
	if strings.EqualFold(locale, "en") {
		return EnglishLabels
	}
	return ThaiLabels
}
