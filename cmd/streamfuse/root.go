package main

import (
	"github.com/spf13/cobra"

	"github.com/streamfuse/streamfuse/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "streamfuse",
		Short:         "Streamfuse fuses adjacent stream operators in declarative pipelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newOptimizeCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
