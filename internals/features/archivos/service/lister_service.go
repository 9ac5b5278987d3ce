package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/fedecate04/ORG-NICA-APP/internals/constants"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/dto"
	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

type ListerService struct {
	Store *storage.Client
	Meta  *metaService.MetaService
	Root  string
}

func NewListerService(store *storage.Client, meta *metaService.MetaService, root string) *ListerService {
	return &ListerService{Store: store, Meta: meta, Root: root}
}

// List enumera los archivos de una categoría del tema, filtrados por
// extensión aceptada y ordenados por nombre sin distinguir mayúsculas.
// Si el backend no responde, el panel rinde vacío: un listado caído no
// voltea el resto de la página.
func (s *ListerService) List(ctx context.Context, tema, categoria string) []dto.ArchivoView {
	folder := storage.CategoryPath(s.Root, tema, categoria)

	objs, err := s.Store.List(ctx, folder)
	if err != nil {
		log.Printf("⚠️ Listado de %s falló, se muestra vacío: %v", folder, err)
		return []dto.ArchivoView{}
	}

	meta := s.Meta.Read(ctx, tema)

	views := make([]dto.ArchivoView, 0, len(objs))
	for _, obj := range objs {
		if !constants.ExtensionAceptada(categoria, obj.Name) {
			continue
		}
		titulo := meta.GetTitle(categoria, obj.Name)
		if titulo == "" {
			titulo = obj.Name
		}
		views = append(views, dto.ArchivoView{
			Nombre: obj.Name,
			Titulo: titulo,
			URL:    s.Store.PublicURL(storage.Join(folder, obj.Name)),
			Size:   obj.Metadata.Size,
			Mime:   obj.Metadata.Mimetype,
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return strings.ToLower(views[i].Nombre) < strings.ToLower(views[j].Nombre)
	})
	return views
}
