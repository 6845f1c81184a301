package render

import (
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/pretty/internal/doc"
)

func deepNest(indent int) doc.Doc {
	return doc.Nest(indent, doc.Appends(doc.Line(), tx("x"), doc.Line(), tx("y")))
}

func TestWideIndentIsWrittenInFull(t *testing.T) {
	for _, indent := range []int{63, 64, 65, 150} {
		out := render(t, settings(indent+10, indent), deepNest(indent))
		pad := strings.Repeat(" ", indent)
		assert.Equal(t, "\n"+pad+"x\n"+pad+"y", out, "indent %d", indent)
	}
}

func TestLineBreakMemoryDoesNotGrowWithIndent(t *testing.T) {
	const indent = 1 << 20
	const runs = 10
	s := settings(indent+10, indent)
	d := deepNest(indent)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	for i := 0; i < runs; i++ {
		assert.NoError(t, Render(io.Discard, s, d))
	}
	runtime.ReadMemStats(&after)

	perRender := (after.TotalAlloc - before.TotalAlloc) / runs
	assert.Less(t, perRender, uint64(64<<10), "bytes allocated per render")
}
