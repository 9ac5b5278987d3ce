package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/configs"
	archivoController "github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/controller"
	archivoRoute "github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/route"
	archivoService "github.com/fedecate04/ORG-NICA-APP/internals/features/archivos/service"
	edicionRoute "github.com/fedecate04/ORG-NICA-APP/internals/features/edicion/route"
	enlaceController "github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/controller"
	enlaceRoute "github.com/fedecate04/ORG-NICA-APP/internals/features/enlaces/route"
	metaService "github.com/fedecate04/ORG-NICA-APP/internals/features/metadata/service"
	temaRoute "github.com/fedecate04/ORG-NICA-APP/internals/features/temas/route"
	editMiddleware "github.com/fedecate04/ORG-NICA-APP/internals/middlewares/edit"
	"github.com/fedecate04/ORG-NICA-APP/internals/storage"
)

func SetupRoutes(app *fiber.App, store *storage.Client) {
	root := configs.CourseRoot

	meta := metaService.NewMetaService(store, root)
	lister := archivoService.NewListerService(store, meta, root)
	archivoCtrl := archivoController.NewArchivoController(store, meta, lister, root)
	enlaceCtrl := enlaceController.NewEnlaceController(meta)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	log.Println("[INFO] Setting up AUTH group...")
	auth := app.Group("/api/auth")

	log.Println("[INFO] Setting up ADMIN group (RequireEditMode)...")
	admin := app.Group("/api/a", editMiddleware.RequireEditMode())

	// ===================== FEATURES =====================
	temaRoute.TemaRoutes(public)
	archivoRoute.ArchivoRoutes(public, admin, archivoCtrl)
	enlaceRoute.EnlaceRoutes(public, admin, enlaceCtrl)
	edicionRoute.EdicionRoutes(auth)
}
