package testutil

import (
	"errors"
	"sync"

	"github.com/dimensionhq/fleet/internal/toolchain"
)

// Version outputs of `rustc -vV` for each channel.
const (
	NightlyVersion = "rustc 1.80.0-nightly (ab14f944a 2024-05-11)\nbinary: rustc\nrelease: 1.80.0-nightly\nLLVM version: 18.1.4\n"
	StableVersion  = "rustc 1.78.0 (9b00956e5 2024-04-29)\nbinary: rustc\nrelease: 1.78.0\nLLVM version: 18.1.2\n"
)

// ErrNoCompiler simulates a missing rustc.
var ErrNoCompiler = errors.New("exec: \"rustc\": executable file not found in $PATH")

// FakeEnvironment implements toolchain.Environment over in-memory state.
type FakeEnvironment struct {
	Home       string
	HomeErr    error
	Platform   toolchain.Family
	Version    string
	VersionErr error

	mu    sync.Mutex
	files map[string]bool
}

// NewFakeEnvironment creates an environment with no tools installed and a
// stable compiler.
func NewFakeEnvironment(family toolchain.Family) *FakeEnvironment {
	return &FakeEnvironment{
		Home:     "/home/dev",
		Platform: family,
		Version:  StableVersion,
		files:    make(map[string]bool),
	}
}

// Install marks paths as present.
func (e *FakeEnvironment) Install(paths ...string) *FakeEnvironment {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range paths {
		e.files[p] = true
	}
	return e
}

// Uninstall marks a path as absent.
func (e *FakeEnvironment) Uninstall(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.files, path)
}

// WithNightly switches the compiler to the nightly channel.
func (e *FakeEnvironment) WithNightly() *FakeEnvironment {
	e.Version = NightlyVersion
	return e
}

// HomeDir returns the configured home directory.
func (e *FakeEnvironment) HomeDir() (string, error) {
	return e.Home, e.HomeErr
}

// Exists reports whether path was installed.
func (e *FakeEnvironment) Exists(path string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.files[path]
}

// Family returns the configured platform family.
func (e *FakeEnvironment) Family() toolchain.Family {
	return e.Platform
}

// CompilerVersion returns the configured version output.
func (e *FakeEnvironment) CompilerVersion() (string, error) {
	return e.Version, e.VersionErr
}

// MockRunner records subprocess invocations instead of running them.
type MockRunner struct {
	ExitCode int
	Err      error

	mu    sync.Mutex
	calls []RunnerCall
}

// RunnerCall records one Run invocation.
type RunnerCall struct {
	Name string
	Args []string
}

// Run records the call and returns the configured outcome.
func (r *MockRunner) Run(name string, args []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RunnerCall{Name: name, Args: append([]string(nil), args...)})
	return r.ExitCode, r.Err
}

// Calls returns a copy of all recorded calls.
func (r *MockRunner) Calls() []RunnerCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunnerCall, len(r.calls))
	copy(out, r.calls)
	return out
}
