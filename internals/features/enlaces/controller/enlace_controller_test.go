package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

type bucketFalso struct {
	mu      sync.Mutex
	objetos map[string][]byte
}

func (b *bucketFalso) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, "/storage/v1/object/utn/")
		b.mu.Lock()
		defer b.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			raw, ok := b.objetos[key]
			if !ok {
				http.Error(w, `{"message":"Object not found"}`, http.StatusNotFound)
				return
			}
			_, _ = w.Write(raw)
		case http.MethodPost, http.MethodPut:
			raw, _ := io.ReadAll(r.Body)
			b.objetos[key] = raw
			w.WriteHeader(http.StatusOK)
		}
	}
}

func newAppDePrueba(t *testing.T) (*fiber.App, *bucketFalso) {
	t.Helper()
	bucket := &bucketFalso{objetos: make(map[string][]byte)}
	srv := httptest.NewServer(bucket.handler())
	t.Cleanup(srv.Close)

	store := storage.NewClient(srv.URL, "key", "utn")
	meta := metaService.NewMetaService(store, "Quimica_Organica")
	ctrl := NewEnlaceController(meta)

	app := fiber.New()
	app.Get("/api/public/temas/:slug/enlaces", ctrl.ListarEnlaces)
	app.Post("/api/a/temas/:slug/enlaces", ctrl.AgregarEnlace)
	app.Delete("/api/a/temas/:slug/enlaces/:indice", ctrl.EliminarEnlace)

	return app, bucket
}

func postEnlace(t *testing.T, app *fiber.App, body map[string]string) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/a/temas/alcanos/enlaces", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func TestAgregarEnlacePersisteYNormaliza(t *testing.T) {
	app, bucket := newAppDePrueba(t)

	resp := postEnlace(t, app, map[string]string{
		"titulo": "  Clase 1  ",
		"url":    "https://drive.google.com/file/d/XYZ/view?usp=sharing",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Data struct {
			Titulo string `json:"titulo"`
			URL    string `json:"url"`
			Embed  bool   `json:"embed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "Clase 1", envelope.Data.Titulo)
	assert.Equal(t, "https://drive.google.com/file/d/XYZ/preview", envelope.Data.URL)
	assert.True(t, envelope.Data.Embed)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	assert.Contains(t, string(bucket.objetos["Quimica_Organica/alcanos/meta.json"]), `"video_links"`)
}

func TestAgregarEnlaceSinURLFalla(t *testing.T) {
	app, _ := newAppDePrueba(t)

	resp := postEnlace(t, app, map[string]string{"titulo": "Sin url"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEliminarEnlaceFueraDeRangoNoFalla(t *testing.T) {
	app, bucket := newAppDePrueba(t)
	bucket.objetos["Quimica_Organica/alcanos/meta.json"] =
		[]byte(`{"video_links":[{"titulo":"Intro","url":"https://youtu.be/abc"}]}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/a/temas/alcanos/enlaces/7", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// La lista queda como estaba.
	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	assert.Contains(t, string(bucket.objetos["Quimica_Organica/alcanos/meta.json"]), "Intro")
}

func TestEliminarEnlacePorIndice(t *testing.T) {
	app, bucket := newAppDePrueba(t)
	bucket.objetos["Quimica_Organica/alcanos/meta.json"] =
		[]byte(`{"video_links":[{"titulo":"Uno","url":"https://youtu.be/a"},{"titulo":"Dos","url":"https://youtu.be/b"}]}`)

	req := httptest.NewRequest(http.MethodDelete, "/api/a/temas/alcanos/enlaces/0", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bucket.mu.Lock()
	defer bucket.mu.Unlock()
	s := string(bucket.objetos["Quimica_Organica/alcanos/meta.json"])
	assert.NotContains(t, s, "Uno")
	assert.Contains(t, s, "Dos")
}
