package routes

import (
	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-apidocs/internal/apidocs"
	"github.com/janisto/echo-apidocs/internal/http/docs"
	"github.com/janisto/echo-apidocs/internal/http/health"
)

// Register wires the health check and the documentation routes.
func Register(e *echo.Echo, plugin *apidocs.Plugin, version string) error {
	e.GET("/health", health.NewHandler(version))
	return docs.Register(e, plugin, docs.Assets())
}
