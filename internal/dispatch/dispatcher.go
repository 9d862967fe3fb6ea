package dispatch

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dimensionhq/fleet/internal/cargoconfig"
	"github.com/dimensionhq/fleet/internal/logging"
	"github.com/dimensionhq/fleet/internal/toolchain"
)

// Status lines printed after the cargo configuration has been written.
const (
	Confirmation = "📝 Generated Fleet Config"
	Unchanged    = "📝 Fleet Config up to date"
)

// Options configures a Dispatcher.
type Options struct {
	// Tool is the build tool executable, normally "cargo".
	Tool string
	// ConfigPath is where the cargo configuration is written.
	ConfigPath string
}

// Dispatcher regenerates the cargo configuration and forwards an action to
// the build tool.
type Dispatcher struct {
	prober *toolchain.Prober
	runner Runner
	opts   Options
	logger *logging.Logger
	out    io.Writer
}

// New creates a dispatcher. Status lines are written to out.
func New(prober *toolchain.Prober, runner Runner, opts Options, logger *logging.Logger, out io.Writer) *Dispatcher {
	if opts.Tool == "" {
		opts.Tool = "cargo"
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = cargoconfig.DefaultPath
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{
		prober: prober,
		runner: runner,
		opts:   opts,
		logger: logger,
		out:    out,
	}
}

// Configure probes the toolchain and rewrites the cargo configuration.
func (d *Dispatcher) Configure() (cargoconfig.WriteResult, error) {
	facts := d.prober.Probe()
	res, err := cargoconfig.Write(cargoconfig.Synthesize(facts), d.opts.ConfigPath)
	if err != nil {
		return res, err
	}

	d.logger.Debug("cargo config written",
		"path", res.Path,
		"digest", res.Digest,
		"changed", res.Changed)
	if res.Changed {
		fmt.Fprintln(d.out, Confirmation)
	} else {
		fmt.Fprintln(d.out, Unchanged)
	}
	return res, nil
}

// Dispatch regenerates the configuration and runs `<tool> <action> <args...>`.
//
// It returns a *cargoconfig.WriteError when the configuration cannot be
// written, a *StartError when the tool cannot be started and a
// *BuildFailedError when the tool exits non-zero.
func (d *Dispatcher) Dispatch(action Action, args []string) error {
	log := d.logger.WithInvocation(uuid.NewString()).WithAction(string(action))

	if _, err := d.Configure(); err != nil {
		return err
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, string(action))
	argv = append(argv, args...)

	log.Debug("forwarding to build tool", "tool", d.opts.Tool, "args", argv)
	code, err := d.runner.Run(d.opts.Tool, argv)
	if err != nil {
		return &StartError{Tool: d.opts.Tool, Err: err}
	}
	if code != 0 {
		log.Debug("build tool failed", "code", code)
		return &BuildFailedError{Action: action, Code: code}
	}
	return nil
}
