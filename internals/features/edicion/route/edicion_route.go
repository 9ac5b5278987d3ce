package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/features/edicion/controller"
	editMiddleware "github.com/fedecate04/ORG-NICA-APP/internals/middlewares/edit"
)

func EdicionRoutes(auth fiber.Router) {
	ctrl := controller.NewEdicionController()
	auth.Post("/edicion", ctrl.IngresarCodigo)
	auth.Delete("/edicion", editMiddleware.RequireEditMode(), ctrl.CerrarSesion)
}
