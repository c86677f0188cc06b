package docs

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/echo-apidocs/internal/platform/logging"
)

// ResourceHandler serves files from an fs.FS, trying each location in
// order and serving the first regular file found.
type ResourceHandler struct {
	fsys      fs.FS
	locations []string
}

// NewResourceHandler returns a handler resolving names against locations,
// which are directories inside fsys.
func NewResourceHandler(fsys fs.FS, locations ...string) *ResourceHandler {
	return &ResourceHandler{fsys: fsys, locations: locations}
}

// Resolve maps name to a file path inside fsys. Names are cleaned as rooted
// paths first, so ".." segments never leave a location.
func (h *ResourceHandler) Resolve(name string) (string, bool) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return "", false
	}
	for _, loc := range h.locations {
		candidate := path.Join(loc, name)
		if !fs.ValidPath(candidate) {
			continue
		}
		if fi, err := fs.Stat(h.fsys, candidate); err == nil && fi.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// Serve writes the resource resolved from name. A miss is echo.ErrNotFound.
func (h *ResourceHandler) Serve(c *echo.Context, name string) error {
	resolved, ok := h.Resolve(name)
	if !ok {
		applog.LogDebug(c.Request().Context(), "static resource not found", slog.String("name", name))
		return echo.ErrNotFound
	}

	f, err := h.fsys.Open(resolved)
	if err != nil {
		return echo.ErrNotFound
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return err
	}
	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(c.Response(), c.Request(), fi.Name(), fi.ModTime(), content)
	return nil
}

// Pattern returns a handler serving the path matched by a trailing "*" route.
func (h *ResourceHandler) Pattern() echo.HandlerFunc {
	return func(c *echo.Context) error {
		return h.Serve(c, c.Param("*"))
	}
}

// RootFiles returns a handler for a ":name" route that only serves names
// ending in ext.
func (h *ResourceHandler) RootFiles(param, ext string) echo.HandlerFunc {
	return func(c *echo.Context) error {
		name := c.Param(param)
		if !strings.HasSuffix(name, ext) || strings.Contains(name, "/") {
			return echo.ErrNotFound
		}
		return h.Serve(c, name)
	}
}
