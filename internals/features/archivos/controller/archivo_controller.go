package controller

import (
	"fmt"
	"io"
	"net/url"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/configs"
	"github.com/fedecate04/ORG-NICA-APP/internals/constants"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/dto"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/service"
	enlaceDto "github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/dto"
	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

// Un solo controller parametrizado por categoría cubre los cuatro paneles
// (resúmenes, apuntes, videos y audios).
type ArchivoController struct {
	Store  *storage.Client
	Meta   *metaService.MetaService
	Lister *service.ListerService
	Root   string
}

func NewArchivoController(store *storage.Client, meta *metaService.MetaService, lister *service.ListerService, root string) *ArchivoController {
	return &ArchivoController{Store: store, Meta: meta, Lister: lister, Root: root}
}

// resolverRuta valida tema y categoría de la URL. No escribe la respuesta:
// devuelve el error para que cada handler lo formatee con el envelope usual.
func resolverRuta(c *fiber.Ctx) (tema, categoria string, ferr *fiber.Error) {
	tema, ok := constants.TemaPorSlug(c.Params("slug"))
	if !ok {
		return "", "", fiber.NewError(fiber.StatusNotFound, "Tema desconocido")
	}
	categoria = c.Params("categoria")
	if !constants.EsCategoriaValida(categoria) {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Categoría inválida")
	}
	return tema, categoria, nil
}

// 🟢 GET /api/public/temas/:slug/archivos/:categoria
func (ctrl *ArchivoController) Listar(c *fiber.Ctx) error {
	tema, categoria, ferr := resolverRuta(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	ctx := c.UserContext()
	resp := dto.ListadoResponse{
		Tema:      tema,
		Categoria: categoria,
		Archivos:  ctrl.Lister.List(ctx, tema, categoria),
	}
	if categoria == constants.CategoriaVideos {
		meta := ctrl.Meta.Read(ctx, tema)
		resp.Enlaces = enlaceDto.ToEnlaceResponses(meta.VideoLinks)
	}

	return helper.Success(c, "Listado de "+categoria, resp)
}

// 🟢 POST /api/a/temas/:slug/archivos/:categoria  (multipart: file, titulo opcional)
func (ctrl *ArchivoController) Subir(c *fiber.Ctx) error {
	tema, categoria, ferr := resolverRuta(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Falta el archivo (campo 'file')")
	}

	// El límite se chequea antes de tocar la red: un archivo gigante se
	// rechaza con mensaje, no se intenta y falla del lado del bucket.
	if fh.Size > configs.MaxUploadBytes() {
		return helper.Error(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("El archivo (%.1f MB) supera el límite de %d MB",
				float64(fh.Size)/1024/1024, configs.MaxUploadMB))
	}

	if !constants.ExtensionAceptada(categoria, fh.Filename) {
		return helper.Error(c, fiber.StatusBadRequest,
			fmt.Sprintf("Extensión no aceptada para %s", categoria))
	}

	src, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "No se pudo abrir el archivo subido")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "No se pudo leer el archivo subido")
	}

	contentType := constants.MimePorNombre(fh.Filename)
	if contentType == "application/octet-stream" {
		contentType = mimetype.Detect(data).String()
	}

	ctx := c.UserContext()
	key := storage.AssetKey(ctrl.Root, tema, categoria, fh.Filename)
	if err := ctrl.Store.Upload(ctx, key, data, contentType); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "La subida falló", err.Error())
	}

	nombre := path.Base(key)
	titulo := c.FormValue("titulo")
	if titulo != "" {
		meta := ctrl.Meta.Read(ctx, tema)
		meta.SetTitle(categoria, nombre, titulo)
		if err := ctrl.Meta.Write(ctx, tema, meta); err != nil {
			// El archivo quedó subido; el título no. Eso se avisa, no se oculta.
			return helper.ErrorWithDetails(c, fiber.StatusBadGateway,
				"Archivo subido pero no se pudo guardar el título", err.Error())
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subido: "+fh.Filename, dto.SubidaResponse{
		Nombre: nombre,
		Key:    key,
		URL:    ctrl.Store.PublicURL(key),
		Titulo: titulo,
	})
}

// 🟢 DELETE /api/a/temas/:slug/archivos/:categoria/:nombre
func (ctrl *ArchivoController) Eliminar(c *fiber.Ctx) error {
	tema, categoria, ferr := resolverRuta(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	nombre, err := url.PathUnescape(c.Params("nombre"))
	if err != nil || nombre == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nombre inválido")
	}

	ctx := c.UserContext()
	key := storage.Join(storage.CategoryPath(ctrl.Root, tema, categoria), nombre)
	if err := ctrl.Store.Remove(ctx, []string{key}); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "No se pudo eliminar", err.Error())
	}

	// Limpiar el título huérfano del meta.json.
	meta := ctrl.Meta.Read(ctx, tema)
	meta.SetTitle(categoria, nombre, "")
	if err := ctrl.Meta.Write(ctx, tema, meta); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway,
			"Archivo eliminado pero no se pudo actualizar el meta", err.Error())
	}

	return helper.Success(c, "Eliminado: "+nombre, nil)
}

// 🟢 PUT /api/a/temas/:slug/archivos/:categoria/:nombre/titulo
func (ctrl *ArchivoController) Retitular(c *fiber.Ctx) error {
	tema, categoria, ferr := resolverRuta(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	nombre, err := url.PathUnescape(c.Params("nombre"))
	if err != nil || nombre == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Nombre inválido")
	}

	var req dto.TituloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body inválido")
	}

	ctx := c.UserContext()
	meta := ctrl.Meta.Read(ctx, tema)
	meta.SetTitle(categoria, nombre, req.Titulo)
	if err := ctrl.Meta.Write(ctx, tema, meta); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "No se pudo guardar el título", err.Error())
	}

	return helper.Success(c, "Título actualizado", fiber.Map{
		"nombre": nombre,
		"titulo": meta.GetTitle(categoria, nombre),
	})
}
