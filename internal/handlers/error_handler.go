package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"stonestore/internal/models"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler keeps every /api failure in the {success:false,error}
// envelope and leaves the rest to echo's default handler.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed || !strings.HasPrefix(c.Request().URL.Path, "/api/") {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		code := http.StatusInternalServerError
		message := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		}

		if err := c.JSON(code, models.ErrorResponse{Success: false, Error: message}); err != nil {
			c.Logger().Error(err)
		}
	}
}
