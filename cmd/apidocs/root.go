package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/janisto/echo-apidocs/internal/platform/config"
)

// cli carries state shared by every subcommand.
type cli struct {
	configFile string
	envFile    string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "apidocs",
		Short:         "Serves the API documentation UI and description",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadDotEnv(c.envFile)
			v, err := config.NewViper(c.configFile)
			if err != nil {
				return err
			}
			c.v = v
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (YAML, JSON or TOML); defaults to $"+config.EnvConfigFile)
	pf.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded when present")

	serve := newServeCmd(c)
	root.AddCommand(serve, newExportCmd(c))
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// bindFlags binds each flag of fs to the configuration key in keys. Unset
// flags do not override environment or file values.
func (c *cli) bindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		if f := fs.Lookup(flag); f != nil {
			if err := c.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func addDocFlags(fs *pflag.FlagSet) {
	fs.String("api-version", "", "published API version (rest.api.version)")
	fs.String("include", "", "regular expression selecting documented paths (rest.api.urls.to.list)")
}

var docFlagKeys = map[string]string{
	"api-version": config.KeyAPIVersion,
	"include":     config.KeyURLsToList,
}
