package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"
	"sigs.k8s.io/yaml"

	"github.com/janisto/echo-apidocs/internal/apidocs"
	"github.com/janisto/echo-apidocs/internal/platform/respond"
)

const testDoc = `{
  "swagger": "2.0",
  "info": {"title": "generated", "version": "0"},
  "basePath": "/",
  "paths": {
    "/health": {"get": {"responses": {"200": {"description": "OK"}}}},
    "/api-docs": {"get": {"responses": {"200": {"description": "OK"}}}}
  }
}`

type staticDoc string

func (d staticDoc) ReadDoc() string { return string(d) }

func newTestPlugin(t *testing.T) *apidocs.Plugin {
	t.Helper()
	p, err := apidocs.NewPlugin(apidocs.PluginConfig{
		APIVersion:      "1.0",
		IncludePatterns: "/health",
		Source:          staticDoc(testDoc),
	}, apidocs.APIInfo{Title: "Microservice API", Contact: "info@4finance.com"})
	if err != nil {
		t.Fatalf("failed to build plugin: %v", err)
	}
	return p
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	if err := Register(e, newTestPlugin(t), Assets()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return e
}

func get(e *echo.Echo, target, accept string) *httptest.ResponseRecorder {
	return do(e, http.MethodGet, target, accept)
}

func do(e *echo.Echo, method, target, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister_View(t *testing.T) {
	rec := get(newTestEcho(t), "/swagger", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("expected text/html content type, got %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"swagger-ui", "/swagger-init.js", "/css/theme.css", "/lib/docs-url.js"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected view to reference %q", want)
		}
	}
}

func TestRegister_ViewMissing(t *testing.T) {
	err := Register(echo.New(), newTestPlugin(t), fstest.MapFS{})
	if err == nil {
		t.Fatal("expected error when the view is missing")
	}
}

func TestRegister_StaticResources(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		target      string
		contentType string
		contains    string
	}{
		{"/swagger/index.html", "text/html", "swagger-ui"},
		{"/swagger/css/theme.css", "text/css", ".docs-header"},
		{"/swagger-init.js", "javascript", "SwaggerUIBundle"},
		{"/images/logo.svg", "image/svg+xml", "<svg"},
		{"/lib/docs-url.js", "javascript", "DocsURL"},
		{"/css/theme.css", "text/css", ".docs-header"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(e, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, tt.contentType) {
				t.Fatalf("expected content type containing %q, got %q", tt.contentType, ct)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Fatalf("expected body to contain %q", tt.contains)
			}
		})
	}
}

func TestRegister_StaticMisses(t *testing.T) {
	e := newTestEcho(t)

	for _, target := range []string{
		"/css/missing.css",
		"/images/",
		"/lib/images",
		"/missing.js",
		"/index.html",
		"/nested/swagger-init.js",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(e, target, "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("expected problem details, got %q", ct)
			}
		})
	}
}

func TestRegister_Head(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		target      string
		contentType string
	}{
		{"/swagger", "text/html"},
		{"/css/theme.css", "text/css"},
		{"/swagger-init.js", "javascript"},
		{"/api-docs", "application/json"},
		{"/api-docs.yaml", "application/yaml"},
		{"/api-docs/info", "application/json"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(e, http.MethodHead, tt.target, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, tt.contentType) {
				t.Fatalf("expected content type containing %q, got %q", tt.contentType, ct)
			}
		})
	}
}

func TestRegister_OtherMethods(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		method string
		target string
		code   int
	}{
		{http.MethodPost, "/foo", http.StatusNotFound},
		{http.MethodDelete, "/missing.js", http.StatusNotFound},
		{http.MethodPost, "/swagger", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api-docs", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, "")
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}

func TestRegister_UILoadsOwnDescription(t *testing.T) {
	e := newTestEcho(t)

	lib := get(e, "/lib/docs-url.js", "").Body.String()
	if strings.Contains(lib, "location.search") || strings.Contains(lib, "URLSearchParams") {
		t.Fatalf("expected docs URL helper to ignore the query string, got %q", lib)
	}
	script := get(e, "/swagger-init.js", "").Body.String()
	for _, want := range []string{"'/api-docs'", "queryConfigEnabled: false"} {
		if !strings.Contains(script, want) {
			t.Fatalf("expected init script to contain %q", want)
		}
	}
}

func TestOwnedPaths(t *testing.T) {
	owned := OwnedPaths(Assets())

	for _, want := range []string{"/api-docs", "/swagger", "/css", "/swagger-init.js", "/docs-url.js"} {
		if !slices.Contains(owned, want) {
			t.Fatalf("expected %q in %v", want, owned)
		}
	}
	if slices.Contains(owned, "/index.html") {
		t.Fatalf("expected only scripts to be owned at the root, got %v", owned)
	}
}

func TestRegister_APIDocsJSON(t *testing.T) {
	rec := get(newTestEcho(t), "/api-docs", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected application/json, got %q", ct)
	}
	var doc struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode document: %v", err)
	}
	if doc.Info.Title != "Microservice API" || doc.Info.Version != "1.0" {
		t.Fatalf("unexpected info %+v", doc.Info)
	}
	if _, ok := doc.Paths["/health"]; !ok || len(doc.Paths) != 1 {
		t.Fatalf("expected only /health, got %v", doc.Paths)
	}
}

func TestRegister_APIDocsYAML(t *testing.T) {
	rec := get(newTestEcho(t), "/api-docs.yaml", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/yaml" {
		t.Fatalf("expected application/yaml, got %q", ct)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("failed to decode YAML: %v", err)
	}
	if doc["swagger"] != "2.0" {
		t.Fatalf("expected swagger 2.0, got %v", doc["swagger"])
	}
}

func TestRegister_InfoNegotiation(t *testing.T) {
	e := newTestEcho(t)

	rec := get(e, "/api-docs/info", "")
	var info apidocs.APIInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if info.Title != "Microservice API" {
		t.Fatalf("unexpected info %+v", info)
	}

	rec = get(e, "/api-docs/info", "application/cbor")
	if ct := rec.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected application/cbor, got %q", ct)
	}
	info = apidocs.APIInfo{}
	if err := cbor.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode CBOR: %v", err)
	}
	if info.Contact != "info@4finance.com" {
		t.Fatalf("unexpected info %+v", info)
	}
}
