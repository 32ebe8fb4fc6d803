// Package cmd provides the root command and CLI setup for lswbridge.
package cmd

import (
	"context"
	"os"

	"github.com/mouse-blink/lswbridge/internal/adapter"
	"github.com/mouse-blink/lswbridge/internal/controller"
	"github.com/mouse-blink/lswbridge/internal/domain"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/spf13/cobra"
)

const defaultLearner = "./learninglsw"

var fsAdapter adapter.ModelFSAdapter
var dialectLoader adapter.DialectLoader
var reportStore adapter.ReportStore

// newWorkflow builds the workflow for a command once its configuration is
// resolved. Tests replace it to inject mocks.
var newWorkflow func(cmd *cobra.Command, cfg commandConfig) domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalModelFSAdapter()
	dialectLoader = adapter.NewHCLDialectLoader()
	reportStore = adapter.NewLocalReportStore()
	newWorkflow = buildWorkflow
}

func buildWorkflow(cmd *cobra.Command, cfg commandConfig) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	learnerAdapter := adapter.NewLocalLearnerAdapter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	rewriter := domain.NewTokenRewriter()
	if cfg.rawSubstitution {
		rewriter = domain.NewLiteralRewriter()
	}

	return domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		domain.NewOrchestrator(fsAdapter, learnerAdapter, cfg.dialect),
		domain.NewTranslatorWithRewriter(cfg.dialect, rewriter),
		domain.NewPostProcessor(),
	)
}

var learnerFlag string
var noLearnFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lswbridge MODEL PI0",
		Short: "Translate an IMITATOR model for the LSW learning tool and run it",
		Long: `lswbridge cuts a tagged IMITATOR model into component A, component B,
the specification and the init definition, instantiates component A with the
reference valuation PI0, marks every initial location, appends the analysis
line and writes the result next to the model (model.imi -> model.lsw).
The learning binary is then called on the written file.

PI0 has the form "param1=value1,param2=value2". Parameter names must not
overlap each other nor any other text of the model.`,
		Args:              cobra.ExactArgs(2),
		SilenceUsage:      true,
		PersistentPreRunE: setupCommand,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			wf := newWorkflow(cmd, cfg)
			translateArgs := domain.TranslateArgs{
				Model:     m.Path(args[0]),
				Valuation: args[1],
				Debug:     debugFlag,
				Report:    m.Path(reportFlag),
			}

			if noLearnFlag {
				_, err := wf.Translate(cmd.Context(), translateArgs)
				return err
			}

			return wf.Run(cmd.Context(), domain.RunArgs{
				TranslateArgs: translateArgs,
				Learner:       cfg.learner,
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&dialectFlag, "dialect", "d", "", "HCL file overriding model markers, keywords and separators")
	cmd.PersistentFlags().StringVar(&settingsFlag, "settings", string(adapter.DefaultSettingsPath), "YAML settings file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print every fragment and the transformed model")
	cmd.PersistentFlags().StringVar(&reportFlag, "report", "", "write a YAML summary of the run to this file")
	cmd.PersistentFlags().BoolVar(&rawSubstitutionFlag, "raw-substitution", false, "replace parameter names even inside longer identifiers")
	cmd.Flags().StringVarP(&learnerFlag, "learner", "b", defaultLearner, "path of the learning binary")
	cmd.Flags().BoolVar(&noLearnFlag, "no-learn", false, "only write the translated model, do not call the learner")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
