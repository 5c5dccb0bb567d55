package main

import (
	"github.com/spf13/cobra"
)

// configPath overrides config/{ENV_NAME}.yaml when set.
var configPath string

var rootCmd = &cobra.Command{
	Use:          "service",
	Short:        "DevOps CI/CD demo service: health, greeting, version and calculator endpoints",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (default config/$ENV_NAME.yaml)")
}

// Execute runs the root command. Errors are printed by cobra.
func Execute() error {
	return rootCmd.Execute()
}
