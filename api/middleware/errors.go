package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/statattack/statattack/internal/apperrors"
)

// HTTPErrorHandler maps AppError codes onto HTTP responses. Only the
// user-facing message leaves the server; the wrapped cause is logged.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Println("request failed:", appErr.Error())
		}
		_ = c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	log.Println("unexpected error:", err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
