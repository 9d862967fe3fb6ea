package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dimensionhq/fleet/internal/toolchain"
)

func TestFakeEnvironment_InstallAndUninstall(t *testing.T) {
	env := NewFakeEnvironment(toolchain.FamilyUnix).Install("/usr/bin/lld")
	assert.True(t, env.Exists("/usr/bin/lld"))
	assert.False(t, env.Exists("/usr/bin/clang"))

	env.Uninstall("/usr/bin/lld")
	assert.False(t, env.Exists("/usr/bin/lld"))
}

func TestMockRunner_RecordsCalls(t *testing.T) {
	r := &MockRunner{ExitCode: 3}
	args := []string{"build", "--release"}
	code, err := r.Run("cargo", args)
	args[0] = "mutated"

	assert.NoError(t, err)
	assert.Equal(t, 3, code)
	calls := r.Calls()
	if assert.Len(t, calls, 1) {
		assert.Equal(t, "cargo", calls[0].Name)
		assert.Equal(t, []string{"build", "--release"}, calls[0].Args)
	}
}
