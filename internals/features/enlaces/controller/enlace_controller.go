package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/constants"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/dto"
	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"
)

var validate = validator.New()

type EnlaceController struct {
	Meta *metaService.MetaService
}

func NewEnlaceController(meta *metaService.MetaService) *EnlaceController {
	return &EnlaceController{Meta: meta}
}

// 🟢 GET /api/public/temas/:slug/enlaces
func (ctrl *EnlaceController) ListarEnlaces(c *fiber.Ctx) error {
	tema, ok := constants.TemaPorSlug(c.Params("slug"))
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Tema desconocido")
	}

	meta := ctrl.Meta.Read(c.UserContext(), tema)
	return helper.Success(c, "Enlaces del tema", dto.ToEnlaceResponses(meta.VideoLinks))
}

// 🟢 POST /api/a/temas/:slug/enlaces
func (ctrl *EnlaceController) AgregarEnlace(c *fiber.Ctx) error {
	tema, ok := constants.TemaPorSlug(c.Params("slug"))
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Tema desconocido")
	}

	var req dto.AgregarEnlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	meta := ctrl.Meta.Read(ctx, tema)
	meta.AddLink(req.Titulo, req.URL)
	if err := ctrl.Meta.Write(ctx, tema, meta); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "No se pudo guardar el enlace", err.Error())
	}

	idx := len(meta.VideoLinks) - 1
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enlace agregado",
		dto.ToEnlaceResponse(idx, meta.VideoLinks[idx]))
}

// 🟢 DELETE /api/a/temas/:slug/enlaces/:indice
// El borrado es posicional; un índice fuera de rango no borra nada y no es error.
func (ctrl *EnlaceController) EliminarEnlace(c *fiber.Ctx) error {
	tema, ok := constants.TemaPorSlug(c.Params("slug"))
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Tema desconocido")
	}

	idx, err := strconv.Atoi(c.Params("indice"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Índice inválido")
	}

	ctx := c.UserContext()
	meta := ctrl.Meta.Read(ctx, tema)
	meta.DeleteLink(idx)
	if err := ctrl.Meta.Write(ctx, tema, meta); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadGateway, "No se pudo guardar el cambio", err.Error())
	}

	return helper.Success(c, "Enlace eliminado", dto.ToEnlaceResponses(meta.VideoLinks))
}
