package middleware

import (
	"strings"

	"github.com/labstack/echo/v5"
)

var securityHeaders = [][2]string{
	{"Cache-Control", "no-store"},
	{"Content-Security-Policy", "frame-ancestors 'none'"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{
		"Permissions-Policy",
		"accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
	},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
}

// Security returns Echo middleware that sets OWASP REST security headers on
// every response except those under skipPrefixes.
//
// A prefix covers the path itself and anything below it separated by "/" or
// ".", so "/api-docs" skips "/api-docs", "/api-docs/info" and "/api-docs.yaml"
// but not "/api-docsx". The documentation UI and its assets are skipped so
// browsers can cache them.
func Security(skipPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if UnderAny(c.Request().URL.Path, skipPrefixes) {
				return next(c)
			}

			h := c.Response().Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			return next(c)
		}
	}
}

// UnderAny reports whether path equals one of prefixes or continues it
// with a "/" or "." separator.
func UnderAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p {
			return true
		}
		if rest, ok := strings.CutPrefix(path, p); ok && (rest[0] == '/' || rest[0] == '.') {
			return true
		}
	}
	return false
}
