package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dimensionhq/fleet/internal/config"
	"github.com/dimensionhq/fleet/internal/dispatch"
	"github.com/dimensionhq/fleet/internal/logging"
	"github.com/dimensionhq/fleet/internal/toolchain"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

// Swapped out in tests.
var (
	newEnvironment = func(cfg *config.Config) toolchain.Environment {
		env := toolchain.NewOSEnvironment()
		env.Compiler = cfg.Build.Compiler
		return env
	}
	newRunner = func() dispatch.Runner {
		return dispatch.NewExecRunner()
	}
)

// errHelpRequested makes an explicit -h/--help exit non-zero without an
// error message, as the build wrapper never ran.
var errHelpRequested = errors.New("help requested")

var rootCmd = &cobra.Command{
	Use:   "fleet",
	Short: "The blazing fast build tool for Rust",
	Long: `fleet speeds up cargo builds. Before every build or run it detects
sccache, lld/zld and clang, writes a tuned .cargo/config.toml and then
hands the command over to cargo. When the build fails it lists what is
missing from your toolchain and how to install it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the CLI with args and prints a message for every failure.
// The returned error is non-nil whenever the process should exit 1.
func ExecuteArgs(args []string) error {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	err := execute(args)
	if err == nil && wantsHelp(args) {
		err = errHelpRequested
	}
	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// execute hands build and run straight to their command so cargo receives
// every argument after the action, including ones that share a name with a
// fleet flag such as --config.
func execute(args []string) error {
	if global, forwarded, ok := splitAction(args); ok && !wantsHelp(global) {
		if err := parseGlobalFlags(global); err != nil {
			return err
		}
		args = forwarded
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
	rootCmd.Version = version
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"fleet settings file (default: .fleet.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
}

// loadSettings reads fleet's settings with the persistent flags applied.
func loadSettings(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.WithConfigFile(cfgFile)
	}

	// Errors are nil when the flag exists.
	flags := cmd.Root().PersistentFlags()
	_ = loader.Viper().BindPFlag("log.level", flags.Lookup("log-level"))
	_ = loader.Viper().BindPFlag("log.format", flags.Lookup("log-format"))

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if used := loader.ConfigFile(); used != "" {
		logger.Debug("settings loaded", "file", used)
	}
	return cfg, logger, nil
}

// splitAction separates fleet's own flags from a build or run action and
// the arguments forwarded to cargo. ok is false for any other command line.
func splitAction(args []string) (global, forwarded []string, ok bool) {
	flags := rootCmd.PersistentFlags()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil, nil, false
		}
		if !strings.HasPrefix(arg, "-") {
			if _, err := dispatch.ParseAction(arg); err != nil {
				return nil, nil, false
			}
			return args[:i], args[i:], true
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if f := flags.Lookup(name); f != nil && !hasValue && f.NoOptDefVal == "" {
			i++
		}
	}
	return nil, nil, false
}

// parseGlobalFlags applies the fleet flags given before the action.
func parseGlobalFlags(global []string) error {
	fs := pflag.NewFlagSet("fleet", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.AddFlagSet(rootCmd.PersistentFlags())
	if err := fs.Parse(global); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return nil
}

func wantsHelp(args []string) bool {
	return slices.Contains(args, "--help") || slices.Contains(args, "-h")
}
