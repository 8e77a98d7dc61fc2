package spoilage

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// signalRule señal por palabra clave sobre el texto libre del motivo.
// Cada regla suma una sola vez aunque coincidan varias palabras. El matching
// es por substring, no NLP: los falsos negativos con motivos parafraseados son
// esperables y aceptables en esta v1.
type signalRule struct {
	Label    string
	Points   float64
	Keywords []string // ya normalizadas: minúsculas y sin tildes
}

var signalRules = []signalRule{
	{
		Label:  "ruptura de cadena de frío",
		Points: 10,
		Keywords: []string{
			"frio", "temperatura", "refriger", "congel", "descongel",
			"cold", "freezer", "temperature",
		},
	},
	{
		Label:  "olor o moho",
		Points: 10,
		Keywords: []string{
			"olor", "moho", "hongo", "fermentad", "baboso", "podrid",
			"odor", "smell", "mold",
		},
	},
	{
		Label:  "devolución de cliente",
		Points: 5,
		Keywords: []string{
			"devolucion", "devuelto", "cliente", "return",
		},
	},
}

// stripAccents elimina marcas diacríticas (NFD → quitar Mn → NFC) para que
// "frío" y "frio" coincidan con la misma palabra clave.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeReason minúsculas y sin tildes.
func normalizeReason(s string) string {
	lower := strings.ToLower(s)
	out, _, err := transform.String(stripAccents, lower)
	if err != nil {
		return lower
	}
	return out
}

// matchSignals devuelve las reglas que coinciden con el motivo.
func matchSignals(reason string) []signalRule {
	text := normalizeReason(reason)
	if text == "" {
		return nil
	}
	var matched []signalRule
	for _, rule := range signalRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, rule)
				break
			}
		}
	}
	return matched
}
