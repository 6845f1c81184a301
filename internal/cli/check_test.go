package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	path := writeFile(t, "pair.pd", `group { "hello" sep "world" }`)

	t.Run("text", func(t *testing.T) {
		out, _, err := execute(t, "", "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ok: "+path)
		assert.Contains(t, out, "groups: 1")
		assert.Contains(t, out, "fits in 80 columns (69 left)")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := execute(t, "", "--format", "json", "--width", "20", "--max-indent", "4", "check", path)
		require.NoError(t, err)

		var resp struct {
			Status string      `json:"status"`
			Data   CheckResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.True(t, resp.Data.Fits)
		assert.Equal(t, 9, resp.Data.Remaining)
		assert.Equal(t, 20, resp.Data.Width)
		assert.Equal(t, 10, resp.Data.Stats.TextBytes)
		assert.Equal(t, 1, resp.Data.Stats.Groups)
	})

	t.Run("does not fit", func(t *testing.T) {
		out, _, err := execute(t, "", "--width", "8", "--max-indent", "4", "check", path)
		require.NoError(t, err)
		assert.Contains(t, out, "does not fit in 8 columns")
	})

	t.Run("flat required", func(t *testing.T) {
		_, _, err := execute(t, "", "--width", "8", "--max-indent", "4", "check", "--flat", path)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
	})

	t.Run("syntax error", func(t *testing.T) {
		_, _, err := execute(t, "nest {", "check")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}
