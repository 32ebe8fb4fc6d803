package cmd

import (
	"github.com/mouse-blink/lswbridge/internal/adapter"
	"github.com/spf13/cobra"
)

// dialectCmd represents the dialect command.
var dialectCmd = newDialectCmd()

func newDialectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialect",
		Short: "Print the effective dialect as an HCL dialect file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return adapter.WriteDialect(cmd.OutOrStdout(), configFrom(cmd).dialect)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(dialectCmd)
}
