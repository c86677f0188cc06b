// Package apidocs builds the published API description. The raw document
// comes from the code generated by swag; the plugin applies the configured
// metadata and version and keeps only the paths matching the include pattern.
package apidocs

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"

	"github.com/go-openapi/spec"
	"github.com/samber/lo"
	"github.com/swaggo/swag/v2"
	"sigs.k8s.io/yaml"

	"github.com/janisto/echo-apidocs/internal/platform/config"
)

// ErrNoSource is returned when no generated document is registered under
// the requested instance name.
var ErrNoSource = errors.New("apidocs: no generated documentation registered")

// PluginConfig selects what the plugin publishes.
type PluginConfig struct {
	// APIVersion is published as info.version.
	APIVersion string
	// IncludePatterns is a regular expression matched against the full
	// path (basePath + path) of every documented operation.
	IncludePatterns string
	// Source is the generated documentation registered with swag.
	Source swag.Swagger
}

// NewPluginConfig builds the plugin configuration from the rest.api.*
// configuration keys and the swag document registered as instanceName.
func NewPluginConfig(cfg config.Config, instanceName string) (PluginConfig, error) {
	src := swag.GetSwagger(instanceName)
	if src == nil {
		return PluginConfig{}, fmt.Errorf("%w: %q", ErrNoSource, instanceName)
	}
	return PluginConfig{
		APIVersion:      cfg.API.Version,
		IncludePatterns: cfg.API.URLsToList,
		Source:          src,
	}, nil
}

// Plugin holds the rendered API description. It is built once and is safe
// for concurrent use.
type Plugin struct {
	info  APIInfo
	paths []string
	json  []byte
	yaml  []byte
}

// NewPlugin reads the generated document, applies info and the configured
// version, and drops every path not matching the include pattern.
func NewPlugin(cfg PluginConfig, info APIInfo) (*Plugin, error) {
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	include, err := compileInclude(cfg.IncludePatterns)
	if err != nil {
		return nil, err
	}

	var doc spec.Swagger
	if err := json.Unmarshal([]byte(cfg.Source.ReadDoc()), &doc); err != nil {
		return nil, fmt.Errorf("apidocs: parse generated document: %w", err)
	}

	info.apply(&doc, cfg.APIVersion)
	filterPaths(&doc, include)

	rendered, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("apidocs: render json: %w", err)
	}
	asYAML, err := yaml.JSONToYAML(rendered)
	if err != nil {
		return nil, fmt.Errorf("apidocs: render yaml: %w", err)
	}

	var paths []string
	if doc.Paths != nil {
		paths = lo.Keys(doc.Paths.Paths)
		slices.Sort(paths)
	}

	return &Plugin{info: info, paths: paths, json: rendered, yaml: asYAML}, nil
}

// Info returns the published metadata.
func (p *Plugin) Info() APIInfo { return p.info }

// Paths returns the documented paths in lexical order.
func (p *Plugin) Paths() []string { return slices.Clone(p.paths) }

// JSON returns the description as JSON.
func (p *Plugin) JSON() []byte { return p.json }

// YAML returns the description as YAML.
func (p *Plugin) YAML() []byte { return p.yaml }

// Document returns a fresh copy of the description.
func (p *Plugin) Document() (*spec.Swagger, error) {
	var doc spec.Swagger
	if err := json.Unmarshal(p.json, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func compileInclude(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = ".*"
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("apidocs: invalid include pattern %q: %w", pattern, err)
	}
	return re, nil
}

// filterPaths keeps the paths whose full path matches include and drops tags
// no remaining operation refers to.
func filterPaths(doc *spec.Swagger, include *regexp.Regexp) {
	if doc.Paths == nil {
		return
	}
	doc.Paths.Paths = lo.PickBy(doc.Paths.Paths, func(p string, _ spec.PathItem) bool {
		return include.MatchString(fullPath(doc.BasePath, p))
	})

	used := lo.Uniq(lo.FlatMap(lo.Values(doc.Paths.Paths), func(item spec.PathItem, _ int) []string {
		return lo.FlatMap(operations(item), func(op *spec.Operation, _ int) []string {
			return op.Tags
		})
	}))
	doc.Tags = lo.Filter(doc.Tags, func(t spec.Tag, _ int) bool {
		return lo.Contains(used, t.Name)
	})
}

func operations(item spec.PathItem) []*spec.Operation {
	return lo.Compact([]*spec.Operation{
		item.Get, item.Put, item.Post, item.Delete, item.Options, item.Head, item.Patch,
	})
}

func fullPath(basePath, p string) string {
	if basePath == "" || basePath == "/" {
		return p
	}
	return path.Join(basePath, p)
}
