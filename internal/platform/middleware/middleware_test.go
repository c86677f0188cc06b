package middleware

import (
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v5"
)

func newTestEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Use(mw...)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func ok(c *echo.Context) error {
	return c.NoContent(http.StatusOK)
}
