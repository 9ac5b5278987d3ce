package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/constants"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/temas/dto"
	helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"
)

type TemaController struct{}

func NewTemaController() *TemaController {
	return &TemaController{}
}

// 🟢 GET /api/public/temas
// El catálogo es fijo: se arma desde las constantes, nunca desde el bucket.
func (ctrl *TemaController) ListarTemas(c *fiber.Ctx) error {
	temas := constants.Temas()
	out := make([]dto.TemaResponse, 0, len(temas))
	for _, t := range temas {
		grupo := "base"
		if constants.EsTemaEspecial(t) {
			grupo = "especial"
		}
		out = append(out, dto.TemaResponse{
			Nombre: t,
			Slug:   helper.SafeFolder(t),
			Grupo:  grupo,
		})
	}
	return helper.Success(c, "Catálogo de temas", out)
}
