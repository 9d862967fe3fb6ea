package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_NoArgsShowsHelp(t *testing.T) {
	h := newHarness(t)

	err := h.run()

	assert.NoError(t, err)
	assert.Contains(t, h.stdout.String(), "build")
	assert.Contains(t, h.stdout.String(), "run")
}

func TestExecute_UnknownAction(t *testing.T) {
	h := newHarness(t)

	err := h.run("test")

	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "unknown command")
	assert.Empty(t, h.runner.Calls())
}

func TestExecute_HelpFlagExitsNonZero(t *testing.T) {
	h := newHarness(t)

	err := h.run("--help")

	assert.ErrorIs(t, err, errHelpRequested)
	assert.Contains(t, h.stdout.String(), "fleet")
}

func TestExecute_InvalidSettings(t *testing.T) {
	h := newHarness(t)
	t.Setenv("FLEET_LOG_FORMAT", "xml")

	err := h.run("build")

	require.Error(t, err)
	assert.Contains(t, h.stderr.String(), "log.format")
	assert.Empty(t, h.runner.Calls())
}

func TestWantsHelp(t *testing.T) {
	assert.True(t, wantsHelp([]string{"build", "-h"}))
	assert.True(t, wantsHelp([]string{"--help"}))
	assert.False(t, wantsHelp([]string{"build", "--release"}))
	assert.False(t, wantsHelp(nil))
}
