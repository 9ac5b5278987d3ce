package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/controller"
)

func EnlaceRoutes(public, admin fiber.Router, ctrl *controller.EnlaceController) {
	public.Get("/temas/:slug/enlaces", ctrl.ListarEnlaces)

	admin.Post("/temas/:slug/enlaces", ctrl.AgregarEnlace)
	admin.Delete("/temas/:slug/enlaces/:indice", ctrl.EliminarEnlace)
}
