package dispatch

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner starts a process and waits for it to exit.
type Runner interface {
	// Run executes name with args and returns its exit code. A non-nil
	// error means the process could not be started or waited on.
	Run(name string, args []string) (int, error)
}

// ExecRunner runs processes with the given standard streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits the caller's streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run blocks until the process exits. Output is not captured.
func (r *ExecRunner) Run(name string, args []string) (int, error) {
	// #nosec G204 -- forwarding user arguments to the build tool is the point
	cmd := exec.Command(name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the process was killed by a signal.
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
