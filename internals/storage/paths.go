package storage

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"
)

// Join arma una ruta de objeto con "/" sin dobles separadores
// ni barras colgando en los extremos de cada segmento.
func Join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		for strings.Contains(p, "//") {
			p = strings.ReplaceAll(p, "//", "/")
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

// TopicPrefix es la carpeta raíz de un tema dentro del bucket.
func TopicPrefix(root, tema string) string {
	return Join(root, helper.SafeFolder(tema))
}

// CategoryPath es la carpeta de una categoría dentro del tema.
func CategoryPath(root, tema, categoria string) string {
	return Join(TopicPrefix(root, tema), categoria)
}

// AssetKey deriva la clave de objeto para una subida nueva. El prefijo de
// timestamp evita pisar una re-subida con el mismo nombre.
func AssetKey(root, tema, categoria, filename string) string {
	stamped := fmt.Sprintf("%d_%s", time.Now().Unix(), helper.SafeFilename(filename))
	return Join(CategoryPath(root, tema, categoria), stamped)
}

// escapePath percent-encodea cada segmento de la clave, preservando los "/".
func escapePath(key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
