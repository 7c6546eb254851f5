// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/storefront-admin/storefront-admin/internal/config"
	"github.com/storefront-admin/storefront-admin/internal/logger"
)

var (
	configPath string // directory holding main.toml
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "storefront-admin",
		Short: "Storefront Admin is the back-office of a small retail store",
		Long: `Storefront Admin is the back-office of a small retail store.
It serves the dashboard and the settings pages and manages the
persisted store settings from the command line.`,
		Args:              cobra.OnlyValidArgs,
		SilenceUsage:      true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return loadConfig() },
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"directory containing main.toml",
	)
}

// loadConfig reads the configuration, applies the command line overrides and
// sets up the global logger.
func loadConfig() error {
	c, err := config.ReadConfig(configPath)
	if err != nil {
		return err
	}

	if devMode {
		c.DevMode = true
	}

	if browseStatic {
		c.Webserver.BrowseStatic = true
	}

	if err = logger.Init(c.Log); err != nil {
		return err
	}

	cfg = c

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
