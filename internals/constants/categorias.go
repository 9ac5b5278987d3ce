package constants

import (
	"path/filepath"
	"strings"
)

// Las cuatro categorías de material por tema. Los valores son los nombres
// de carpeta en el bucket y las claves dentro de meta.json: no renombrar.
const (
	CategoriaResumenes = "resumenes"
	CategoriaApuntes   = "apuntes"
	CategoriaVideos    = "videos"
	CategoriaAudios    = "audios"
)

var Categorias = []string{
	CategoriaResumenes,
	CategoriaApuntes,
	CategoriaVideos,
	CategoriaAudios,
}

// Extensiones aceptadas por categoría (comparación case-insensitive).
var extensionesPorCategoria = map[string][]string{
	CategoriaResumenes: {".pdf"},
	CategoriaApuntes:   {".pdf"},
	CategoriaVideos:    {".mp4"},
	CategoriaAudios:    {".mp3", ".wav", ".m4a", ".ogg"},
}

var mimePorExtension = map[string]string{
	".pdf": "application/pdf",
	".mp4": "video/mp4",
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".m4a": "audio/mp4",
	".ogg": "audio/ogg",
}

// EsCategoriaValida valida el segmento de categoría de la URL.
func EsCategoriaValida(cat string) bool {
	_, ok := extensionesPorCategoria[cat]
	return ok
}

// ExtensionesDe devuelve las extensiones aceptadas para la categoría.
func ExtensionesDe(cat string) []string {
	return extensionesPorCategoria[cat]
}

// ExtensionAceptada chequea el sufijo del archivo contra la categoría.
func ExtensionAceptada(cat, filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range extensionesPorCategoria[cat] {
		if ext == e {
			return true
		}
	}
	return false
}

// MimePorNombre resuelve el content-type por extensión; octet-stream si no se conoce.
func MimePorNombre(filename string) string {
	if m, ok := mimePorExtension[strings.ToLower(filepath.Ext(filename))]; ok {
		return m
	}
	return "application/octet-stream"
}
