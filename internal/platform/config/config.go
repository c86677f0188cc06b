// Package config loads service configuration from defaults, an optional
// config file and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/janisto/echo-apidocs/internal/platform/validate"
)

// Configuration keys. Environment variables use the upper-cased key with
// "." and "-" replaced by "_", e.g. REST_API_LICENSE_URL.
const (
	KeyAPIVersion     = "rest.api.version"
	KeyAPITitle       = "rest.api.title"
	KeyAPIDescription = "rest.api.description"
	KeyAPITerms       = "rest.api.terms"
	KeyAPIContact     = "rest.api.contact"
	KeyLicenseType    = "rest.api.license.type"
	KeyLicenseURL     = "rest.api.license.url"
	KeyURLsToList     = "rest.api.urls.to.list"

	KeyServerPort        = "server.port"
	KeyServerEnvironment = "server.environment"
	KeyCORSOrigins       = "server.cors.origins"
	KeyGracefulTimeout   = "server.graceful-timeout"

	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// defaults holds the literal fallback for every key.
var defaults = map[string]any{
	KeyAPIVersion:     "1.0",
	KeyAPITitle:       "Microservice API",
	KeyAPIDescription: "APIs for this microservice",
	KeyAPITerms:       "Defined by 4finance internal licences",
	KeyAPIContact:     "info@4finance.com",
	KeyLicenseType:    "4finance internal licence",
	KeyLicenseURL:     "http://4finance.com",
	KeyURLsToList:     ".*",

	KeyServerPort:        8080,
	KeyServerEnvironment: "production",
	KeyCORSOrigins:       []string{"*"},
	KeyGracefulTimeout:   10 * time.Second,

	KeyLogLevel:  "info",
	KeyLogFormat: "json",
}

// Config is the typed view of all configuration keys.
type Config struct {
	API    API
	Server Server
	Log    Log
}

// API holds the documentation metadata and plugin settings.
type API struct {
	Version     string `config:"rest.api.version"`
	Title       string `config:"rest.api.title"`
	Description string `config:"rest.api.description"`
	Terms       string `config:"rest.api.terms"`
	Contact     string `config:"rest.api.contact"`
	LicenseType string `config:"rest.api.license.type"`
	LicenseURL  string `config:"rest.api.license.url"`
	URLsToList  string `config:"rest.api.urls.to.list" validate:"regexp"`
}

// Server holds HTTP server settings.
type Server struct {
	Port            int           `config:"server.port"             validate:"min=1,max=65535"`
	Environment     string        `config:"server.environment"      validate:"required"`
	CORSOrigins     []string      `config:"server.cors.origins"     validate:"required,min=1"`
	GracefulTimeout time.Duration `config:"server.graceful-timeout" validate:"min=0"`
}

// Log holds logger settings.
type Log struct {
	Level  string `config:"log.level"  validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `config:"log.format" validate:"oneof=json text"`
}

// SetDefaults installs the literal default of every key into v.
func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Default returns the literal default for key, or nil for unknown keys.
func Default(key string) any {
	return defaults[key]
}

// Load reads every key from v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		API: API{
			Version:     v.GetString(KeyAPIVersion),
			Title:       v.GetString(KeyAPITitle),
			Description: v.GetString(KeyAPIDescription),
			Terms:       v.GetString(KeyAPITerms),
			Contact:     v.GetString(KeyAPIContact),
			LicenseType: v.GetString(KeyLicenseType),
			LicenseURL:  v.GetString(KeyLicenseURL),
			URLsToList:  v.GetString(KeyURLsToList),
		},
		Server: Server{
			Port:            v.GetInt(KeyServerPort),
			Environment:     v.GetString(KeyServerEnvironment),
			CORSOrigins:     splitList(v.GetStringSlice(KeyCORSOrigins)),
			GracefulTimeout: v.GetDuration(KeyGracefulTimeout),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}

	if err := validate.New().Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitList splits each item on commas and drops blank entries. Environment
// values reach viper as one string, which it only splits on whitespace.
func splitList(items []string) []string {
	parts := lo.FlatMap(items, func(item string, _ int) []string {
		return strings.Split(item, ",")
	})
	return lo.Compact(lo.Map(parts, func(part string, _ int) string {
		return strings.TrimSpace(part)
	}))
}
