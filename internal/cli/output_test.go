package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", errors.New("cause"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := WrapExitError(ExitFailure, "wrapped", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "wrapped")
	assert.Contains(t, err.Error(), "cause")
}

func TestOutputFormatterText(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}

	require.NoError(t, f.Success("raw\n"))
	assert.Equal(t, "raw\n", out.String())

	err := f.Fail(ExitFailure, ErrCodeRender, "rendering", errors.New("short write"))
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E003]: rendering: short write\n", errOut.String())
}

func TestOutputFormatterJSON(t *testing.T) {
	var out bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, RunID: "run-1"}

	require.NoError(t, f.Error(ErrCodeInput, "reading input", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "run-1", resp.RunID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInput, resp.Error.Code)
}

func TestVerboseLog(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &out, ErrWriter: &errOut}

	f.VerboseLog("hidden %d", 1)
	assert.Empty(t, errOut.String())

	f.Verbose = true
	f.VerboseLog("shown %d", 2)
	assert.Equal(t, "shown 2\n", errOut.String())
	assert.Empty(t, out.String())
}

func TestReported(t *testing.T) {
	f := &OutputFormatter{Format: "text", Writer: &bytes.Buffer{}, ErrWriter: &bytes.Buffer{}}

	assert.True(t, Reported(f.Fail(ExitFailure, ErrCodeRender, "rendering", nil)))
	assert.False(t, Reported(NewExitError(ExitCommandError, "invalid format")))
	assert.False(t, Reported(errors.New("plain")))
	assert.False(t, Reported(nil))
}
