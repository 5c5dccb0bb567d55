package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjstillabower/cicd-demo-service/internal/service"
	"github.com/kjstillabower/cicd-demo-service/internal/validation"
)

var calcCmd = &cobra.Command{
	Use:   "calc <add|subtract|multiply|divide> <a> <b>",
	Short: "Run one calculator operation and print the result",
	Example: `  service calc add 2 3
  service calc divide -9 4`,
	// Negative operands would otherwise be read as flags.
	DisableFlagParsing: true,
	RunE:               runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}
	if len(args) != 3 {
		return fmt.Errorf("calc requires 3 arguments (operation, a, b), got %d", len(args))
	}
	op, err := service.ParseOperation(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}
	a, b, err := validation.ParseOperands(args[1], args[2])
	if err != nil {
		return err
	}
	result, err := service.NewCalculator().Calculate(op, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
