package edit

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/fedecate04/ORG-NICA-APP/internals/configs"
)

// Sesiones de edición cerradas explícitamente. El token sigue siendo
// criptográficamente válido hasta su exp, así que acá se lo veta por sid.
var (
	revokedMu sync.Mutex
	revoked   = make(map[string]time.Time)
)

// RevokeSession veta un sid hasta que expire su token.
func RevokeSession(sid string, exp time.Time) {
	if sid == "" {
		return
	}
	revokedMu.Lock()
	revoked[sid] = exp
	revokedMu.Unlock()
}

func isRevoked(sid string) bool {
	revokedMu.Lock()
	defer revokedMu.Unlock()
	exp, ok := revoked[sid]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(revoked, sid)
		return false
	}
	return true
}

// StartRevocationJanitor limpia periódicamente los vetos ya vencidos.
func StartRevocationJanitor() {
	go func() {
		for range time.Tick(10 * time.Minute) {
			now := time.Now()
			revokedMu.Lock()
			for sid, exp := range revoked {
				if now.After(exp) {
					delete(revoked, sid)
				}
			}
			revokedMu.Unlock()
		}
	}()
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Falta el token de edición")
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization debe ser Bearer")
	}
	return strings.TrimPrefix(auth, "Bearer "), nil
}

// RequireEditMode protege todas las rutas que mutan contenido. El estado
// de edición viaja en el token de cada request, no en una variable global:
// dos sesiones concurrentes no se pisan el modo edición.
func RequireEditMode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return err
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de firma inesperado")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			log.Println("[ERROR] Token de edición inválido:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Token de edición inválido o vencido")
		}

		if canEdit, _ := claims["can_edit"].(bool); !canEdit {
			return fiber.NewError(fiber.StatusForbidden, "El token no habilita edición")
		}

		sid, _ := claims["sid"].(string)
		if sid == "" || isRevoked(sid) {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesión de edición cerrada")
		}

		var exp time.Time
		if v, ok := claims["exp"].(float64); ok {
			exp = time.Unix(int64(v), 0)
		}

		c.Locals("can_edit", true)
		c.Locals("edit_sid", sid)
		c.Locals("edit_exp", exp)
		return c.Next()
	}
}
