package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reCarpeta = regexp.MustCompile(`[^a-z0-9\-_]`)
	reArchivo = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)
)

// stripDiacritics descompone (NFKD), descarta marcas combinantes (é → e)
// y todo lo que quede fuera de ASCII.
func stripDiacritics(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SafeFolder convierte un nombre de tema en segmento de carpeta del bucket:
// minúsculas, espacios a "_", solo [a-z0-9_-]. Determinística e idempotente.
func SafeFolder(name string) string {
	s := stripDiacritics(name)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	return reCarpeta.ReplaceAllString(s, "")
}

// SafeFilename normaliza un nombre de archivo subido: sin diacríticos,
// espacios a "_", y cualquier otro caracter raro pasa a "_".
// Conserva mayúsculas, puntos y guiones ([A-Za-z0-9_.-]).
func SafeFilename(name string) string {
	s := stripDiacritics(name)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	return reArchivo.ReplaceAllString(s, "_")
}
