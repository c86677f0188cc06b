package server

import (
	"log/slog"

	"github.com/labstack/echo/v5"
	"go.uber.org/fx"

	"github.com/janisto/echo-apidocs/internal/platform/config"
)

// Module provides *echo.Echo and serves it between fx start and stop.
// The app shuts down when the server exits on its own.
func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(New),
		fx.Invoke(register),
	)
}

func register(lc fx.Lifecycle, sd fx.Shutdowner, e *echo.Echo, cfg config.Config, logger *slog.Logger) {
	r := &runner{
		e:      e,
		sc:     startConfig(cfg),
		logger: logger,
		onExit: func(err error) {
			code := 0
			if err != nil {
				code = 1
			}
			_ = sd.Shutdown(fx.ExitCode(code))
		},
	}
	lc.Append(fx.Hook{OnStart: r.start, OnStop: r.stop})
}
