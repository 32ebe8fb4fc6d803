package cmd

import (
	"context"
	"fmt"

	"github.com/mouse-blink/lswbridge/internal/adapter"
	"github.com/mouse-blink/lswbridge/internal/ctxlog"
	m "github.com/mouse-blink/lswbridge/internal/model"
	"github.com/spf13/cobra"
)

var dialectFlag string
var settingsFlag string
var logLevelFlag string
var debugFlag bool
var reportFlag string
var rawSubstitutionFlag bool

// commandConfig is what flags and settings resolve to for one invocation.
type commandConfig struct {
	learner         m.Path
	dialect         m.Dialect
	rawSubstitution bool
}

type configKey struct{}

// setupCommand merges settings with flags, installs the logger and loads the
// dialect before any command runs. Flags win over settings.
func setupCommand(cmd *cobra.Command, _ []string) error {
	settings, err := adapter.LoadSettings(m.Path(settingsFlag))
	if err != nil {
		return err
	}

	logLevel := logLevelFlag
	if !flagChanged(cmd, "log-level") {
		logLevel = settings.LogLevelOr(logLevelFlag)
	}

	logger, err := ctxlog.New(cmd.ErrOrStderr(), logLevel)
	if err != nil {
		return err
	}

	dialectPath := dialectFlag
	if !flagChanged(cmd, "dialect") {
		dialectPath = settings.DialectOr(dialectFlag)
	}

	dialect, err := dialectLoader.Load(m.Path(dialectPath))
	if err != nil {
		return err
	}

	learner := learnerFlag
	if !flagChanged(cmd, "learner") {
		learner = settings.LearnerOr(learnerFlag)
	}

	logger.Debug("Configuration resolved.", "settings", settingsFlag, "dialect", dialectPath, "learner", learner, "log_level", logLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = ctxlog.WithLogger(ctx, logger)
	ctx = context.WithValue(ctx, configKey{}, commandConfig{
		learner:         m.Path(learner),
		dialect:         dialect,
		rawSubstitution: rawSubstitutionFlag,
	})
	cmd.SetContext(ctx)

	return nil
}

func configFrom(cmd *cobra.Command) commandConfig {
	if cfg, ok := cmd.Context().Value(configKey{}).(commandConfig); ok {
		return cfg
	}

	panic(fmt.Sprintf("cmd: %s ran without setupCommand", cmd.Name()))
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)

	return flag != nil && flag.Changed
}
