package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tableau/internal/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "simplex",
		Short:         "Exact-rational tableau simplex with a step-by-step trace",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(logLevel, "text", cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newSolveCmd(), newExamplesCmd())
	return root
}
