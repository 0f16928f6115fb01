package middleware

import (
	"net/url"
	"strings"

	"videoteca-backend/internal/services"
	"videoteca-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionKey is the request-locals key holding the verified session claims.
const SessionKey = "session"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

const (
	loginPath     = "/login"
	loginAPIPath  = "/api/auth/login"
	bootstrapPath = "/api/users/create-admin"
	adminAreaPath = "/usuarios"
	adminAPIPath  = "/api/users"
)

// AccessGate authorizes every request before its handler runs: the login
// endpoint is always open, the login page redirects authenticated users home,
// anonymous requests elsewhere get a 401 (API) or a redirect to the login page
// with a return path, and the user-management area requires the admin claim.
func AccessGate(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// The bootstrap endpoint must stay reachable before the first
		// account exists; the handler itself rejects any later call.
		if path == loginAPIPath || path == bootstrapPath {
			return c.Next()
		}

		claims := sessionFromRequest(c, auth)

		if path == loginPath {
			if claims != nil {
				return c.Redirect("/", fiber.StatusFound)
			}
			return c.Next()
		}

		if claims == nil {
			if isAPIPath(path) {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
			}
			return c.Redirect(loginPath+"?from="+url.QueryEscape(path), fiber.StatusFound)
		}

		if isAdminArea(path) && !claims.IsAdmin {
			if isAPIPath(path) {
				return utils.ErrorResponse(c, fiber.StatusForbidden, "Administrator access required")
			}
			return c.Redirect("/", fiber.StatusFound)
		}

		c.Locals(SessionKey, claims)
		return c.Next()
	}
}

// SessionFromContext returns the claims stored by AccessGate, if any.
func SessionFromContext(c *fiber.Ctx) *services.SessionClaims {
	claims, _ := c.Locals(SessionKey).(*services.SessionClaims)
	return claims
}

func sessionFromRequest(c *fiber.Ctx, auth services.AuthService) *services.SessionClaims {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return nil
	}
	claims, err := auth.ParseSession(token)
	if err != nil {
		return nil
	}
	return claims
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func isAdminArea(path string) bool {
	return strings.HasPrefix(path, adminAreaPath) || strings.HasPrefix(path, adminAPIPath)
}
