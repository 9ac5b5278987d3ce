package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/features/temas/controller"
)

func TemaRoutes(public fiber.Router) {
	temaCtrl := controller.NewTemaController()
	public.Get("/temas", temaCtrl.ListarTemas)
}
