package mongodb

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldText pliega un texto para búsqueda: minúsculas y sin marcas
// diacríticas, de modo que "Café" y "cafe" coincidan. Los documentos de
// producto guardan el nombre plegado en nombre_busqueda y las consultas
// pliegan el término con la misma función.
func foldText(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
