package apidocs

import (
	"log/slog"

	"github.com/swaggo/swag/v2"
	"go.uber.org/fx"

	"github.com/janisto/echo-apidocs/internal/platform/config"
)

type moduleOptions struct {
	instanceName string
}

// Option configures Module.
type Option func(*moduleOptions)

// WithInstanceName reads the generated document registered under name
// instead of the swag default.
func WithInstanceName(name string) Option {
	return func(o *moduleOptions) {
		o.instanceName = name
	}
}

// Module provides APIInfo, PluginConfig and *Plugin.
func Module(opts ...Option) fx.Option {
	o := &moduleOptions{instanceName: swag.Name}
	for _, opt := range opts {
		opt(o)
	}

	return fx.Module("apidocs",
		fx.Provide(
			NewAPIInfo,
			func(cfg config.Config) (PluginConfig, error) {
				return NewPluginConfig(cfg, o.instanceName)
			},
			NewPlugin,
		),
		fx.Invoke(logPlugin),
	)
}

func logPlugin(logger *slog.Logger, cfg PluginConfig, p *Plugin) {
	logger.Info("api documentation ready",
		slog.String("title", p.Info().Title),
		slog.String("version", cfg.APIVersion),
		slog.String("includePatterns", cfg.IncludePatterns),
		slog.Int("paths", len(p.paths)),
	)
}
