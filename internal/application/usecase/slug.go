package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
)

// deriveSlug construye un slug URL-safe a partir del título: minúsculas,
// tildes plegadas (café -> cafe), caracteres no alfanuméricos fuera, rachas de
// espacios/guiones colapsadas a un guion y guiones de borde recortados. Se
// agrega un sufijo con los últimos 4 dígitos del timestamp en milisegundos
// para reducir colisiones; la garantía real es el constraint único de
// products.slug.
func deriveSlug(title string, now time.Time) string {
	base := foldDiacritics(strings.TrimSpace(strings.ToLower(title)))
	base = nonWordRe.ReplaceAllString(base, "")
	base = separatorRe.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return base + "-" + ms[len(ms)-4:]
}

// foldDiacritics elimina marcas diacríticas (NFD -> quitar Mn -> NFC) para que
// los títulos en español conserven sus letras en el slug.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
