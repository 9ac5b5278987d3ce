package constants

import helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"

// Catálogo de temas de la cátedra. Se define acá y no cambia en runtime:
// los slugs derivados son los segmentos de carpeta en el bucket.
var TemasBase = []string{
	"Conceptos básicos", "Nomenclatura", "Isomería", "Alcanos",
	"Halogenuros de alquilo", "Alquenos", "Alquinos", "Aromáticos",
	"Alcoholes", "Éteres", "Fenoles", "Aldehídos", "Cetonas",
	"Ácidos carboxílicos",
}

var TemasEspeciales = []string{
	"Heteroátomos", "PAHs", "Carbohidratos", "Aminoácidos", "Lípidos y proteínas",
}

// Temas devuelve el catálogo completo (base + grupos especiales, en orden).
func Temas() []string {
	out := make([]string, 0, len(TemasBase)+len(TemasEspeciales))
	out = append(out, TemasBase...)
	out = append(out, TemasEspeciales...)
	return out
}

// TemaPorSlug busca el nombre original de un tema a partir de su slug.
func TemaPorSlug(slug string) (string, bool) {
	for _, t := range Temas() {
		if helper.SafeFolder(t) == slug {
			return t, true
		}
	}
	return "", false
}

// EsTemaEspecial indica si el tema pertenece a los grupos especiales.
func EsTemaEspecial(nombre string) bool {
	for _, t := range TemasEspeciales {
		if t == nombre {
			return true
		}
	}
	return false
}
