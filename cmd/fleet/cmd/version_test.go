package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)
	SetVersion("v0.4.0", "abc123def", "2024-01-15")
	t.Cleanup(func() { SetVersion("", "", "") })

	require.NoError(t, h.run("version"))

	output := h.stdout.String()
	assert.Contains(t, output, "fleet v0.4.0")
	assert.Contains(t, output, "commit: abc123def")
	assert.Contains(t, output, "built:  2024-01-15")
}
