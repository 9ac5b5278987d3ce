package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/model"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

const metaFilename = "meta.json"

type MetaService struct {
	Store *storage.Client
	Root  string
}

func NewMetaService(store *storage.Client, root string) *MetaService {
	return &MetaService{Store: store, Root: root}
}

func (s *MetaService) metaKey(tema string) string {
	return storage.Join(storage.TopicPrefix(s.Root, tema), metaFilename)
}

// Read trae el meta.json del tema. El documento es decoración: si no está
// o no parsea se devuelve vacío y la página sigue, nunca un error.
func (s *MetaService) Read(ctx context.Context, tema string) *model.TopicMeta {
	meta := &model.TopicMeta{}

	raw, err := s.Store.Download(ctx, s.metaKey(tema))
	if err != nil || len(raw) == 0 {
		return meta
	}
	if err := json.Unmarshal(raw, meta); err != nil {
		log.Printf("⚠️ meta.json de %q no parsea, se ignora: %v", tema, err)
		return &model.TopicMeta{}
	}
	return meta
}

// Write serializa y pisa el meta.json completo (gana el último que escribe).
// JSON identado y con UTF-8 tal cual, igual que los documentos existentes.
func (s *MetaService) Write(ctx context.Context, tema string, meta *model.TopicMeta) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("no se pudo serializar meta de %q: %w", tema, err)
	}

	if err := s.Store.Upload(ctx, s.metaKey(tema), buf.Bytes(), "application/json"); err != nil {
		return fmt.Errorf("no se pudo guardar meta de %q: %w", tema, err)
	}
	return nil
}
