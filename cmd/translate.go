package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lswbridge/internal/domain"
	m "github.com/mouse-blink/lswbridge/internal/model"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate MODEL PI0",
		Short: "Write the translated model without calling the learner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			_, err := newWorkflow(cmd, cfg).Translate(cmd.Context(), domain.TranslateArgs{
				Model:     m.Path(args[0]),
				Valuation: args[1],
				Debug:     debugFlag,
				Report:    m.Path(reportFlag),
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
