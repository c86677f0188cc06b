// Package docs serves the API documentation UI, its static assets and the
// machine-readable API description.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/samber/lo"

	"github.com/janisto/echo-apidocs/internal/apidocs"
	"github.com/janisto/echo-apidocs/internal/platform/respond"
)

//go:embed static
var staticFiles embed.FS

const (
	// ViewPath is the documentation UI route.
	ViewPath = "/swagger"
	// ViewFile is the view served at ViewPath, relative to the asset root.
	ViewFile = "swagger/index.html"

	scriptExt = ".js"
	mimeYAML  = "application/yaml"
	mimeJSON  = "application/json"
)

// Locations are the asset directories tried, in order, for every resource pattern.
var Locations = []string{
	"swagger",
	"swagger/images",
	"swagger/lib",
	"swagger/css",
}

// resourcePrefixes are served from Locations as "<prefix>/*" routes.
var resourcePrefixes = []string{"/swagger", "/images", "/lib", "/css"}

// readMethods are the methods answered by every documentation route.
var readMethods = []string{http.MethodGet, http.MethodHead}

// pathPrefixes lists the route prefixes owned by this package.
var pathPrefixes = append([]string{"/api-docs"}, resourcePrefixes...)

// OwnedPaths returns the route prefixes owned by this package plus the
// root-level scripts found in assets, which are served as "/<name>.js".
func OwnedPaths(assets fs.FS) []string {
	owned := append([]string{}, pathPrefixes...)
	for _, loc := range Locations {
		entries, err := fs.ReadDir(assets, loc)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), scriptExt) {
				owned = append(owned, "/"+entry.Name())
			}
		}
	}
	return lo.Uniq(owned)
}

// Assets returns the embedded asset tree rooted at the static directory.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Register wires the documentation routes, each answering GET and HEAD:
//   - /swagger serves the UI view.
//   - /swagger/*, /images/*, /lib/*, /css/* and /<name>.js serve assets.
//   - /api-docs and /api-docs.yaml serve the API description.
//   - /api-docs/info serves the API metadata.
func Register(e *echo.Echo, plugin *apidocs.Plugin, assets fs.FS) error {
	view, err := fs.ReadFile(assets, ViewFile)
	if err != nil {
		return fmt.Errorf("read documentation view: %w", err)
	}

	h := &handler{plugin: plugin, page: view}
	e.Match(readMethods, ViewPath, h.getView)
	e.Match(readMethods, "/api-docs", h.getJSON)
	e.Match(readMethods, "/api-docs.yaml", h.getYAML)
	e.Match(readMethods, "/api-docs/info", h.getInfo)

	resources := NewResourceHandler(assets, Locations...)
	for _, prefix := range resourcePrefixes {
		e.Match(readMethods, prefix+"/*", resources.Pattern())
	}
	e.Match(readMethods, "/:script", resources.RootFiles("script", scriptExt))
	// Other methods on unmatched single-segment paths stay 404, not 405.
	e.RouteNotFound("/:script", notFound)
	return nil
}

func notFound(*echo.Context) error {
	return echo.ErrNotFound
}

type handler struct {
	plugin *apidocs.Plugin
	page   []byte
}

// getView godoc
//
//	@Summary		Documentation UI
//	@Description	Serves the interactive documentation page
//	@Tags			docs
//	@Produce		html
//	@Success		200	{string}	string
//	@Failure		500	{object}	respond.ProblemDetails
//	@Router			/swagger [get]
func (h *handler) getView(c *echo.Context) error {
	return c.HTMLBlob(http.StatusOK, h.page)
}

// getJSON godoc
//
//	@Summary		API description (JSON)
//	@Description	Returns the filtered Swagger 2.0 description of this service
//	@Tags			docs
//	@Produce		json
//	@Success		200	{object}	object
//	@Router			/api-docs [get]
func (h *handler) getJSON(c *echo.Context) error {
	return c.Blob(http.StatusOK, mimeJSON, h.plugin.JSON())
}

// getYAML godoc
//
//	@Summary		API description (YAML)
//	@Description	Returns the filtered Swagger 2.0 description of this service
//	@Tags			docs
//	@Produce		application/yaml
//	@Success		200	{string}	string
//	@Router			/api-docs.yaml [get]
func (h *handler) getYAML(c *echo.Context) error {
	return c.Blob(http.StatusOK, mimeYAML, h.plugin.YAML())
}

// getInfo godoc
//
//	@Summary		API metadata
//	@Description	Returns the configured API metadata
//	@Tags			docs
//	@Produce		json,application/cbor
//	@Success		200	{object}	apidocs.APIInfo
//	@Router			/api-docs/info [get]
func (h *handler) getInfo(c *echo.Context) error {
	return respond.Negotiate(c, http.StatusOK, h.plugin.Info())
}
