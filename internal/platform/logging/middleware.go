package logging

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v5"

	appmiddleware "github.com/janisto/echo-apidocs/internal/platform/middleware"
)

// RequestLogger returns Echo middleware that enriches the request context
// with an slog logger carrying W3C trace metadata and the request ID.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			tc, _ := parseTraceparent(c.Request().Header.Get(traceparentHeader))
			reqID, _ := c.Get(appmiddleware.ContextKeyRequestID).(string)

			traceID := tc.TraceID
			if traceID == "" {
				traceID = reqID
			}

			ctx := c.Request().Context()
			ctx = contextWithTraceID(ctx, traceID)
			ctx = contextWithLogger(ctx, loggerWithTrace(Logger(), tc, reqID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// AccessLogger returns Echo middleware that logs structured request summaries
// after each request completes. Requests for paths under quietPrefixes, matched
// by segment as in appmiddleware.UnderAny, are logged at debug level so static
// asset traffic does not drown the log.
func AccessLogger(quietPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()

			err := next(c)

			status, size := 0, 0
			if resp, unwrapErr := echo.UnwrapResponse(c.Response()); unwrapErr == nil {
				status = resp.Status
				size = int(resp.Size)
			}

			path := c.Request().URL.Path
			level := slog.LevelInfo
			if appmiddleware.UnderAny(path, quietPrefixes) {
				level = slog.LevelDebug
			}

			ctx := c.Request().Context()
			LoggerFromContext(ctx).LogAttrs(ctx, level, "request completed",
				slog.String("method", c.Request().Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Int("bytes", size),
				slog.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}
