package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag/v2"

	"github.com/janisto/echo-apidocs/internal/apidocs"
	"github.com/janisto/echo-apidocs/internal/platform/config"
)

func newExportCmd(c *cli) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered API description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.bindFlags(cmd.Flags(), docFlagKeys); err != nil {
				return err
			}
			if output == "" || output == "-" {
				return c.export(cmd.OutOrStdout(), format)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := c.export(f, format); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&format, "format", "f", "json", "output format json|yaml")
	fs.StringVarP(&output, "output", "o", "", "output file; stdout when empty or -")
	addDocFlags(fs)
	return cmd
}

func (c *cli) export(w io.Writer, format string) error {
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	pluginCfg, err := apidocs.NewPluginConfig(cfg, swag.Name)
	if err != nil {
		return err
	}
	plugin, err := apidocs.NewPlugin(pluginCfg, apidocs.NewAPIInfo(cfg))
	if err != nil {
		return err
	}

	var body []byte
	switch format {
	case "json":
		body = plugin.JSON()
	case "yaml", "yml":
		body = plugin.YAML()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	_, err = w.Write(body)
	return err
}
