package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// APIVersion describes the JSON API revision served under /api.
type APIVersion struct {
	Version    string
	Message    string
	SunsetDate *time.Time
}

// VersionMiddleware stamps API responses with version headers
type VersionMiddleware struct {
	current APIVersion
}

func NewVersionMiddleware(version, message string) *VersionMiddleware {
	return &VersionMiddleware{current: APIVersion{Version: version, Message: message}}
}

// Deprecate marks the current version for removal on sunset.
func (vm *VersionMiddleware) Deprecate(sunset time.Time) {
	vm.current.SunsetDate = &sunset
}

// VersionHeader adds version information to response headers
func (vm *VersionMiddleware) VersionHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-API-Version", vm.current.Version)
			if vm.current.Message != "" {
				h.Set("X-API-Message", vm.current.Message)
			}
			if vm.current.SunsetDate != nil {
				h.Set("X-API-Deprecated", "true")
				h.Set("X-API-Sunset", vm.current.SunsetDate.Format(time.RFC3339))
			}
			return next(c)
		}
	}
}
