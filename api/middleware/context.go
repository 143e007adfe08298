package middleware

import (
	"meallink/internal/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextUserIDKey = "auth_user_id"
	contextRolesKey  = "auth_roles"
)

func SetAuthContext(c echo.Context, userID uuid.UUID, roles []entity.Role) {
	c.Set(contextUserIDKey, userID)
	c.Set(contextRolesKey, roles)
}

func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(contextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func RolesFromContext(c echo.Context) ([]entity.Role, bool) {
	value := c.Get(contextRolesKey)
	roles, ok := value.([]entity.Role)
	return roles, ok
}

func HasRole(c echo.Context, role entity.Role) bool {
	roles, ok := RolesFromContext(c)
	if !ok {
		return false
	}
	for _, held := range roles {
		if held == role {
			return true
		}
	}
	return false
}
