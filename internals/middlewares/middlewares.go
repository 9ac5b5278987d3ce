package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fedecate04/ORG-NICA-APP/internals/middlewares/logger"
)

// SetupMiddlewares registra la pila base en orden: recovery primero
// para que un panic en cualquier capa no tire el proceso.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
