package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleetforge/migration-compass/internal/config"
	"github.com/fleetforge/migration-compass/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "compass-api",
	Short: "Migration planning API service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Optional: deployment env files override nothing already exported.
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
}

// initialize loads the configuration and installs the global logger.
func initialize() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger := log.New(cfg.Service.LogLevel)
	zap.ReplaceGlobals(logger)

	return cfg, nil
}
