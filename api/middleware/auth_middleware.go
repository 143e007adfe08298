package middleware

import (
	"net/http"
	"strings"

	"meallink/internal/repository"
	"meallink/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves a bearer credential to a user and its role set.
// It runs on every protected route and is the sole authorization entry
// point; the user is re-loaded each call so deleted accounts fail fast.
type AuthMiddleware struct {
	JWT   *utils.TokenManager
	Users repository.UserRepository
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil || m.Users == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		token, err := extractBearerToken(c.Request())
		if err != nil {
			// Missing or malformed scheme is a distinct client error from
			// an invalid or expired token.
			return err
		}
		subject, err := m.JWT.Parse(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		ctx := c.Request().Context()
		user, err := m.Users.FindByID(ctx, userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "auth lookup failed")
		}
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
		}
		roles, err := m.Users.RolesOf(ctx, user.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "auth lookup failed")
		}

		SetAuthContext(c, user.ID, roles)
		return next(c)
	}
}

func extractBearerToken(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid auth scheme")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid auth scheme")
	}
	return token, nil
}
