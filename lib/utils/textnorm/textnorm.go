package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize remove acentos, converte para maiúsculas e colapsa espaços.
// É a forma canônica usada nas chaves de deduplicação e nas buscas
// heurísticas sobre texto livre.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	out = strings.ToUpper(out)
	return strings.Join(strings.Fields(out), " ")
}

// ContainsEitherWay verifica contenção de substring nos dois sentidos,
// após normalização. Usado no casamento difuso dos jobs de reconciliação.
func ContainsEitherWay(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
