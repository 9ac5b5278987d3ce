package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

func newListerDePrueba(t *testing.T, handler http.HandlerFunc) *ListerService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := storage.NewClient(srv.URL, "key", "utn")
	meta := metaService.NewMetaService(store, "Quimica_Organica")
	return NewListerService(store, meta, "Quimica_Organica")
}

func TestListFiltraOrdenaYDecoraTitulos(t *testing.T) {
	lister := newListerDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/storage/v1/object/list/utn":
			// El backend devuelve de todo: el filtro por extensión es nuestro.
			_, _ = w.Write([]byte(`[
				{"name":"c.PDF","metadata":{"size":3,"mimetype":"application/pdf"}},
				{"name":"b.txt","metadata":{"size":2,"mimetype":"text/plain"}},
				{"name":"a.pdf","metadata":{"size":1,"mimetype":"application/pdf"}},
				{"name":"meta.json","metadata":{"size":9,"mimetype":"application/json"}}
			]`))
		case r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`{"titles":{"resumenes":{"a.pdf":"Guía 1"}}}`))
		}
	})

	vistas := lister.List(context.Background(), "Alcanos", "resumenes")
	require.Len(t, vistas, 2)

	// Orden case-insensitive por nombre; .PDF en mayúsculas también entra.
	assert.Equal(t, "a.pdf", vistas[0].Nombre)
	assert.Equal(t, "c.PDF", vistas[1].Nombre)

	// Título custom del meta.json, fallback al nombre crudo.
	assert.Equal(t, "Guía 1", vistas[0].Titulo)
	assert.Equal(t, "c.PDF", vistas[1].Titulo)

	assert.Contains(t, vistas[0].URL, "/storage/v1/object/public/utn/Quimica_Organica/alcanos/resumenes/a.pdf")
	assert.Equal(t, int64(1), vistas[0].Size)
}

func TestListBackendCaidoRindeVacio(t *testing.T) {
	lister := newListerDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	vistas := lister.List(context.Background(), "Alcanos", "resumenes")
	require.NotNil(t, vistas)
	assert.Empty(t, vistas)
}

func TestListCategoriaSinArchivosDelTipo(t *testing.T) {
	lister := newListerDePrueba(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/storage/v1/object/list/utn":
			_, _ = w.Write([]byte(`[{"name":"apunte.pdf","metadata":{"size":5,"mimetype":"application/pdf"}}]`))
		case r.Method == http.MethodGet:
			http.Error(w, "{}", http.StatusNotFound)
		}
	})

	// apunte.pdf no es un .mp4: en videos no aparece.
	vistas := lister.List(context.Background(), "Alcanos", "videos")
	assert.Empty(t, vistas)
}
