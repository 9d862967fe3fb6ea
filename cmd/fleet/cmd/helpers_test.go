package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"

	"github.com/dimensionhq/fleet/internal/config"
	"github.com/dimensionhq/fleet/internal/dispatch"
	"github.com/dimensionhq/fleet/internal/testutil"
	"github.com/dimensionhq/fleet/internal/toolchain"
)

type harness struct {
	dir    string
	env    *testutil.FakeEnvironment
	runner *testutil.MockRunner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newHarness isolates a CLI invocation in a temp project with a fake
// toolchain and a recording runner.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		dir:    t.TempDir(),
		env:    testutil.NewFakeEnvironment(toolchain.FamilyUnix),
		runner: &testutil.MockRunner{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	testutil.Chdir(t, h.dir)
	t.Setenv("HOME", t.TempDir())

	oldEnv, oldRunner := newEnvironment, newRunner
	newEnvironment = func(*config.Config) toolchain.Environment { return h.env }
	newRunner = func() dispatch.Runner { return h.runner }

	rootCmd.SetOut(h.stdout)
	rootCmd.SetErr(h.stderr)
	resetFlags()

	t.Cleanup(func() {
		newEnvironment, newRunner = oldEnv, oldRunner
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})
	return h
}

func (h *harness) run(args ...string) error {
	return ExecuteArgs(args)
}

func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		c.Flags().VisitAll(reset)
	}
}
