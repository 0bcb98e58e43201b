package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Cookies de sesión emitidas por el servicio de auth alojado.
const (
	CookieAccessToken  = "sb-access-token"
	CookieRefreshToken = "sb-refresh-token"
)

// AdminGuardConfig rutas y cookie del guard del panel de administración.
type AdminGuardConfig struct {
	PathPrefix string // por defecto /admin
	CookieName string // por defecto la cookie de access token
}

// AdminGuard intercepta toda petición entrante y protege el prefijo del panel:
//   - fuera del prefijo: pasa sin tocar;
//   - la página de login con cookie presente redirige al dashboard (evita el
//     bucle de login); sin cookie, se deja renderizar;
//   - cualquier otra ruta del prefijo sin cookie redirige al login.
//
// Es solo un chequeo de presencia: no valida firma ni expiración del token.
// Esa validación la hace cada handler privilegiado contra el servicio de auth.
func AdminGuard(cfg AdminGuardConfig) fiber.Handler {
	prefix := cfg.PathPrefix
	if prefix == "" {
		prefix = "/admin"
	}
	cookie := cfg.CookieName
	if cookie == "" {
		cookie = CookieAccessToken
	}
	loginPath := prefix + "/login"
	dashboardPath := prefix + "/dashboard"

	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !strings.HasPrefix(path, prefix) {
			return c.Next()
		}

		if path == loginPath {
			if c.Cookies(cookie) != "" {
				return c.Redirect(dashboardPath, fiber.StatusFound)
			}
			return c.Next()
		}

		if c.Cookies(cookie) == "" {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}
