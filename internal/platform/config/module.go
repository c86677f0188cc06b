package config

import (
	"log/slog"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Module supplies v and provides the loaded Config.
func Module(v *viper.Viper) fx.Option {
	return fx.Module("config",
		fx.Supply(v),
		fx.Provide(Load),
		fx.Invoke(logConfig),
	)
}

func logConfig(logger *slog.Logger, v *viper.Viper, cfg Config) {
	logger.Info("configuration loaded",
		slog.String("configFile", v.ConfigFileUsed()),
		slog.String("environment", cfg.Server.Environment),
		slog.Int("port", cfg.Server.Port),
		slog.String("apiVersion", cfg.API.Version),
		slog.String("includePatterns", cfg.API.URLsToList),
	)
}
