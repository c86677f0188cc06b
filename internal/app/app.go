// Package app assembles the service from its fx modules.
package app

import (
	"log/slog"

	"github.com/labstack/echo/v5"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	// Registers the generated API description with swag.
	_ "github.com/janisto/echo-apidocs/api/swagger"
	"github.com/janisto/echo-apidocs/internal/apidocs"
	"github.com/janisto/echo-apidocs/internal/http/routes"
	"github.com/janisto/echo-apidocs/internal/platform/config"
	"github.com/janisto/echo-apidocs/internal/platform/server"
)

// Options wires configuration, the documentation plugin, the HTTP server and
// every route. Container events are logged through logger at debug level.
func Options(v *viper.Viper, logger *slog.Logger, version string) fx.Option {
	return fx.Options(
		fx.Supply(logger),
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
			fl := &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
			fl.UseLogLevel(slog.LevelDebug)
			return fl
		}),
		config.Module(v),
		apidocs.Module(),
		server.Module(),
		fx.Invoke(func(e *echo.Echo, p *apidocs.Plugin) error {
			return routes.Register(e, p, version)
		}),
	)
}

// New returns the service application.
func New(v *viper.Viper, logger *slog.Logger, version string) *fx.App {
	return fx.New(Options(v, logger, version))
}
