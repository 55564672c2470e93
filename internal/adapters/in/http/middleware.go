package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const accountContextKey = "account"

// AccessGuard resolves the bearer token of every request to an account and
// stores it on the echo context. Requests without a valid token are rejected
// before any handler runs.
type AccessGuard struct {
	accounts ports.AccountRepository
}

// NewAccessGuard creates a guard backed by the account store.
func NewAccessGuard(accounts ports.AccountRepository) AccessGuard {
	return AccessGuard{accounts: accounts}
}

// Middleware authenticates the request. The token travels in the
// Authorization header as "Bearer <token>".
func (g AccessGuard) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		actor, err := g.accounts.GetByToken(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token",
			})
		}

		c.Set(accountContextKey, actor)
		return next(c)
	}
}

// RequireRoles narrows a route to the given roles. Must run after the
// access guard.
func RequireRoles(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := actorFrom(c)
			if actor == nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}
			for _, role := range roles {
				if actor.Role() == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Insufficient role",
			})
		}
	}
}

func actorFrom(c echo.Context) *account.Account {
	actor, _ := c.Get(accountContextKey).(*account.Account)
	return actor
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
