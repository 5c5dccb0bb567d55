package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjstillabower/cicd-demo-service/internal/service"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), service.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
