//go:build !windows

package dispatch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_ExitCodes(t *testing.T) {
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	code, err := r.Run("sh", []string{"-c", "exit 0"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = r.Run("sh", []string{"-c", "exit 101"})
	require.NoError(t, err)
	assert.Equal(t, 101, code)
}

func TestExecRunner_StreamsOutput(t *testing.T) {
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	_, err := r.Run("sh", []string{"-c", "echo compiling"})
	require.NoError(t, err)
	assert.Equal(t, "compiling\n", stdout.String())
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	_, err := r.Run("fleet-definitely-not-a-real-binary", nil)
	assert.Error(t, err)
}
