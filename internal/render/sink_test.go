package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pretty/internal/doc"
)

func TestWriteErrorAbortsRender(t *testing.T) {
	boom := errors.New("disk full")
	var calls int
	var got strings.Builder
	w := WriterFunc(func(p []byte) (int, error) {
		calls++
		if calls > 2 {
			return 0, boom
		}
		return got.Write(p)
	})

	d := doc.Appends(tx("ab"), doc.Sep(), tx("cd"), doc.Sep(), tx("ef"), doc.Sep(), tx("gh"))
	err := Render(w, settings(80, 0), d)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, IsWriteError(err))

	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, int64(3), we.Offset)
	assert.Equal(t, "ab ", got.String())
	assert.Equal(t, 3, calls)
}

func TestShortWriteIsAnError(t *testing.T) {
	w := WriterFunc(func(p []byte) (int, error) { return len(p) / 2, nil })
	err := Render(w, settings(80, 0), tx("abcd"))
	assert.True(t, IsWriteError(err))
}

func TestTrimTrailingSpace(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   string
	}{
		{"no spaces", []string{"abc"}, "abc"},
		{"inner spaces kept", []string{"a", " ", "b"}, "a b"},
		{"before newline", []string{"a  ", "\n", "b"}, "a\nb"},
		{"end of output", []string{"a", " ", " "}, "a"},
		{"indent of blank line", []string{"a\n    \n  b"}, "a\n\n  b"},
		{"split across writes", []string{"a ", " b"}, "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			w := TrimTrailingSpace(&b)
			for _, c := range tt.chunks {
				n, err := w.Write([]byte(c))
				require.NoError(t, err)
				assert.Equal(t, len(c), n)
			}
			assert.Equal(t, tt.want, b.String())
		})
	}
}
