package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"meallink/internal/service"

	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors are treated as storage failures and surface as 500
// without leaking detail.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotRegistered):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAlreadyRegistered):
		status = http.StatusConflict
	case errors.Is(err, service.ErrOTPNotFound),
		errors.Is(err, service.ErrOTPExpired),
		errors.Is(err, service.ErrOTPInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrRegistrationPending),
		errors.Is(err, service.ErrPendingApproval),
		errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrAlreadyClaimed),
		errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		return writeError(c, status, errors.New("internal error"))
	}
	return writeError(c, status, err)
}
