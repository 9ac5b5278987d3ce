package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/controller"
)

// ArchivoRoutes cuelga el listado público y las mutaciones gateadas.
// El grupo admin ya viene con RequireEditMode aplicado.
func ArchivoRoutes(public, admin fiber.Router, ctrl *controller.ArchivoController) {
	public.Get("/temas/:slug/archivos/:categoria", ctrl.Listar)

	admin.Post("/temas/:slug/archivos/:categoria", ctrl.Subir)
	admin.Delete("/temas/:slug/archivos/:categoria/:nombre", ctrl.Eliminar)
	admin.Put("/temas/:slug/archivos/:categoria/:nombre/titulo", ctrl.Retitular)
}
