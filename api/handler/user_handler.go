package handler

import (
	"errors"
	"net/http"

	"meallink/api/middleware"
	"meallink/internal/dto"
	"meallink/internal/entity"
	"meallink/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserHandler(svc *service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate}
}

func (h *UserHandler) Me(c echo.Context) error {
	callerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	current, err := h.Service.Get(c.Request().Context(), callerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(&current.User, current.Roles))
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.UserResponseFromEntity(&users[i].User, users[i].Roles))
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *UserHandler) AssignRole(c echo.Context) error {
	var req dto.AssignRoleRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid user id"))
	}
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return writeError(c, http.StatusBadRequest, errors.New("invalid role"))
	}

	if err := h.Service.AssignRole(c.Request().Context(), userID, role); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
