package main

import (
	"context"
	"fmt"
	"maps"

	"github.com/spf13/cobra"

	"github.com/janisto/echo-apidocs/internal/app"
	"github.com/janisto/echo-apidocs/internal/platform/config"
	applog "github.com/janisto/echo-apidocs/internal/platform/logging"
)

var serveFlagKeys = map[string]string{
	"port":       config.KeyServerPort,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := maps.Clone(serveFlagKeys)
			maps.Copy(keys, docFlagKeys)
			if err := c.bindFlags(cmd.Flags(), keys); err != nil {
				return err
			}
			return c.serve(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.Int("port", 0, "HTTP listen port (server.port)")
	fs.String("log-level", "", "minimum log level (log.level)")
	fs.String("log-format", "", "log format json|text (log.format)")
	addDocFlags(fs)
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	logger, err := applog.Setup(applog.Options{
		Level:  c.v.GetString(config.KeyLogLevel),
		Format: c.v.GetString(config.KeyLogFormat),
	})
	if err != nil {
		return err
	}

	a := app.New(c.v, logger, Version)
	if err := a.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, a.StartTimeout())
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		return err
	}

	sig := <-a.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), a.StopTimeout())
	defer cancel()
	if err := a.Stop(stopCtx); err != nil {
		return err
	}
	if sig.ExitCode != 0 {
		return fmt.Errorf("server exited with code %d", sig.ExitCode)
	}
	return nil
}
