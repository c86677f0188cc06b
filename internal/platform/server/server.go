// Package server builds the echo instance and runs it inside the fx lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/janisto/echo-apidocs/internal/http/docs"
	"github.com/janisto/echo-apidocs/internal/platform/config"
	applog "github.com/janisto/echo-apidocs/internal/platform/logging"
	appmiddleware "github.com/janisto/echo-apidocs/internal/platform/middleware"
	"github.com/janisto/echo-apidocs/internal/platform/respond"
)

const maxBodyBytes = 1 << 20

// New returns an echo instance with the platform middleware stack installed.
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Logger = applog.Logger()

	owned := docs.OwnedPaths(docs.Assets())
	e.Use(
		appmiddleware.Security(owned...),
		appmiddleware.CORS(cfg.Server.CORSOrigins...),
		appmiddleware.RequestID(),
		middleware.BodyLimit(maxBodyBytes),
		applog.RequestLogger(),
		applog.AccessLogger(owned...),
		respond.Recoverer(),
	)
	return e
}

// Address returns the listen address for cfg.
func Address(cfg config.Config) string {
	return ":" + strconv.Itoa(cfg.Server.Port)
}

func startConfig(cfg config.Config) echo.StartConfig {
	return echo.StartConfig{
		Address:         Address(cfg),
		GracefulTimeout: cfg.Server.GracefulTimeout,
		BeforeServeFunc: func(s *http.Server) error {
			s.ReadTimeout = 5 * time.Second
			s.ReadHeaderTimeout = 2 * time.Second
			s.WriteTimeout = 10 * time.Second
			s.IdleTimeout = 60 * time.Second
			s.MaxHeaderBytes = 64 << 10
			return nil
		},
	}
}

// runner serves e in the background until stopped.
type runner struct {
	e      *echo.Echo
	sc     echo.StartConfig
	logger *slog.Logger
	onExit func(error)

	cancel context.CancelFunc
	done   chan struct{}
}

func (r *runner) start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	r.logger.Info("server starting", slog.String("addr", r.sc.Address))
	go func() {
		defer close(r.done)
		err := r.sc.Start(ctx, r.e)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			r.logger.Error("server failed", slog.Any("error", err))
		}
		if r.onExit != nil && ctx.Err() == nil {
			r.onExit(err)
		}
	}()
	return nil
}

func (r *runner) stop(ctx context.Context) error {
	if r.cancel == nil {
		return nil
	}
	r.cancel()
	select {
	case <-r.done:
		r.logger.Info("server exited")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
