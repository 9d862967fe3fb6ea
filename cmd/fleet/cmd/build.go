package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dimensionhq/fleet/internal/diagnostics"
	"github.com/dimensionhq/fleet/internal/dispatch"
	"github.com/dimensionhq/fleet/internal/toolchain"
)

var buildCmd = &cobra.Command{
	Use:   "build [CARGO ARGS]...",
	Short: "Build a Fleet project",
	Long: `Regenerate .cargo/config.toml for the detected toolchain and run
'cargo build'. All arguments are passed to cargo unchanged, for example:

    fleet build --release -p server`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, dispatch.ActionBuild, args)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [CARGO ARGS]... [-- PROGRAM ARGS]...",
	Short: "Run a Fleet project",
	Long: `Regenerate .cargo/config.toml for the detected toolchain and run
'cargo run'. All arguments are passed to cargo unchanged, for example:

    fleet run --release -- --port 8080`,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, dispatch.ActionRun, args)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
}

func runAction(cmd *cobra.Command, action dispatch.Action, args []string) error {
	if wantsHelp(args) {
		_ = cmd.Help()
		return errHelpRequested
	}

	cfg, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	prober := toolchain.NewProber(newEnvironment(cfg), logger.Logger)
	d := dispatch.New(prober, newRunner(), dispatch.Options{
		Tool:       cfg.Build.Tool,
		ConfigPath: cfg.Build.ConfigPath,
	}, logger, cmd.OutOrStdout())

	err = d.Dispatch(action, args)

	var failed *dispatch.BuildFailedError
	if errors.As(err, &failed) {
		// The checklist is printed even when every requirement is met.
		if _, reportErr := diagnostics.NewReporter(prober, cmd.OutOrStdout()).Report(); reportErr != nil {
			logger.Warn("printing diagnostics failed", "error", reportErr)
		}
	}
	return err
}
