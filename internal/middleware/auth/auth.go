package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gearshop/shop-backend/internal/models"
	"github.com/gearshop/shop-backend/internal/repo"
	"github.com/gearshop/shop-backend/pkg/tokens"
)

const userKey = "currentUser"

type Middleware struct {
	Secret []byte
	Users  repo.UserRepository
}

func NewMiddleware(secret []byte, users repo.UserRepository) *Middleware {
	return &Middleware{Secret: secret, Users: users}
}

// RequireRoles authenticates the request and, when roles are given, rejects
// users holding none of them. The resolved user is stored in the echo context
// so handlers can attribute writes to it.
func (m *Middleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := m.claimsFromRequest(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
			}

			user, err := m.Users.GetByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "user is inactive")
			}
			if len(roles) > 0 && !hasAnyRole(user.Roles, roles) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRoles()(next)
}

// CurrentUser returns the user resolved by RequireRoles, or nil on routes
// that never passed through it.
func CurrentUser(c echo.Context) *models.User {
	if u, ok := c.Get(userKey).(*models.User); ok {
		return u
	}
	return nil
}

func (m *Middleware) claimsFromRequest(c echo.Context) (*tokens.AccessClaims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == "" || tokenStr == header {
		return nil, echo.ErrUnauthorized
	}
	return tokens.AccessClaimsFromToken(tokenStr, m.Secret)
}

func hasAnyRole(userRoles []string, wanted []string) bool {
	for _, w := range wanted {
		for _, r := range userRoles {
			if r == w {
				return true
			}
		}
	}
	return false
}
