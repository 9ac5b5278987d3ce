package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/fedecate04/ORG-NICA-APP/internals/configs"
	"github.com/fedecate04/ORG-NICA-APP/internals/features/edicion/dto"
	helper "github.com/fedecate04/ORG-NICA-APP/internals/helpers"
	editMiddleware "github.com/fedecate04/ORG-NICA-APP/internals/middlewares/edit"
)

// Vida de una sesión de edición. El cierre explícito la corta antes.
const sesionTTL = 12 * time.Hour

var validate = validator.New()

type EdicionController struct{}

func NewEdicionController() *EdicionController {
	return &EdicionController{}
}

// 🟢 POST /api/auth/edicion
// Comparación exacta contra el passcode compartido, con espacios
// recortados y sensible a mayúsculas. Sin lockout ni backoff: es un
// secreto de aula, no una credencial por usuario.
func (ctrl *EdicionController) IngresarCodigo(c *fiber.Ctx) error {
	var req dto.CodigoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if strings.TrimSpace(req.Codigo) != configs.Passcode {
		return helper.Error(c, fiber.StatusUnauthorized, "Código incorrecto")
	}

	exp := time.Now().Add(sesionTTL)
	claims := jwt.MapClaims{
		"sid":      uuid.NewString(),
		"can_edit": true,
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] No se pudo firmar el token de edición:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo abrir la sesión de edición")
	}

	return helper.Success(c, "Modo edición activado", dto.SesionResponse{
		Token:  token,
		Expira: exp.Format(time.RFC3339),
	})
}

// 🟢 DELETE /api/auth/edicion  (requiere token vigente)
func (ctrl *EdicionController) CerrarSesion(c *fiber.Ctx) error {
	sid, _ := c.Locals("edit_sid").(string)
	exp, _ := c.Locals("edit_exp").(time.Time)
	if exp.IsZero() {
		exp = time.Now().Add(sesionTTL)
	}

	editMiddleware.RevokeSession(sid, exp)
	return helper.Success(c, "Modo edición cerrado", nil)
}
