package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MasonLiao319/wallpaperDepot/internal/service"
)

// serviceError maps service sentinel errors to HTTP responses. Store
// failures are logged with context and surfaced as a bare 500.
func serviceError(c echo.Context, l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		l.Warn(op, "status", http.StatusBadRequest, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		l.Warn(op, "status", http.StatusNotFound, "error", err)
		return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(op, "status", http.StatusUnauthorized)
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid password"})
	default:
		l.Error(op, "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
}
