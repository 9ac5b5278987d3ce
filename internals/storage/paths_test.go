package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"a", "b", "c"}, "a/b/c"},
		{[]string{"a/", "/b", "c//d"}, "a/b/c/d"},
		{[]string{"/a/", "", "b"}, "a/b"},
		{[]string{"Quimica_Organica", "alcanos", "meta.json"}, "Quimica_Organica/alcanos/meta.json"},
	}
	for _, tt := range tests {
		got := Join(tt.parts...)
		assert.Equal(t, tt.want, got)
		assert.NotContains(t, got, "//")
	}
}

func TestCategoryPath(t *testing.T) {
	assert.Equal(t, "Quimica_Organica/alcanos/videos",
		CategoryPath("Quimica_Organica", "Alcanos", "videos"))
	assert.Equal(t, "Quimica_Organica/acidos_carboxilicos/resumenes",
		CategoryPath("Quimica_Organica", "Ácidos carboxílicos", "resumenes"))
}

func TestAssetKey(t *testing.T) {
	key := AssetKey("Quimica_Organica", "Alcanos", "videos", "informe final.mp4")
	assert.Regexp(t, `^Quimica_Organica/alcanos/videos/\d+_informe_final\.mp4$`, key)
	assert.True(t, strings.HasPrefix(key, "Quimica_Organica/alcanos/videos/"))
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, "a/b%20c/d.pdf", escapePath("a/b c/d.pdf"))
	assert.Equal(t, "sin/cambios.pdf", escapePath("sin/cambios.pdf"))
}
