package helper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reCarpetaValida = regexp.MustCompile(`^[a-z0-9_-]*$`)
var reArchivoValido = regexp.MustCompile(`^[A-Za-z0-9_.\-]*$`)

func TestSafeFolder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alcanos", "alcanos"},
		{"Ácidos carboxílicos", "acidos_carboxilicos"},
		{"Lípidos y proteínas", "lipidos_y_proteinas"},
		{"Éteres", "eteres"},
		{"Halogenuros de alquilo", "halogenuros_de_alquilo"},
		{"PAHs", "pahs"},
		{"Conceptos básicos", "conceptos_basicos"},
		{"  ¡Química!  ", "__quimica__"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFolder(tt.in), "input %q", tt.in)
	}
}

func TestSafeFolderCharsetEIdempotencia(t *testing.T) {
	entradas := []string{
		"Conceptos básicos", "Nomenclatura", "Isomería", "Alcanos",
		"Halogenuros de alquilo", "Alquenos", "Alquinos", "Aromáticos",
		"Alcoholes", "Éteres", "Fenoles", "Aldehídos", "Cetonas",
		"Ácidos carboxílicos", "Heteroátomos", "PAHs", "Carbohidratos",
		"Aminoácidos", "Lípidos y proteínas",
		"nombre raro ~!@#$% ñandú 漢字",
	}
	for _, in := range entradas {
		slug := SafeFolder(in)
		assert.Regexp(t, reCarpetaValida, slug, "input %q", in)
		assert.Equal(t, slug, SafeFolder(slug), "no es idempotente para %q", in)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"informe final.pdf", "informe_final.pdf"},
		{"résumé.pdf", "resume.pdf"},
		{"Guía-3_v2.PDF", "Guia-3_v2.PDF"},
		{"tp#1 (v2).pdf", "tp_1__v2_.pdf"},
		{"  audio clase.mp3  ", "audio_clase.mp3"},
	}
	for _, tt := range tests {
		got := SafeFilename(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Regexp(t, reArchivoValido, got)
	}
}
