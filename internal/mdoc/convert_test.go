package mdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/pretty/internal/render"
)

func renderMarkdown(t *testing.T, src string, width int) string {
	t.Helper()
	d, err := Convert([]byte(src))
	require.NoError(t, err)
	out, err := render.RenderString(&render.Settings{Width: width, MaxIndent: width / 2}, d)
	require.NoError(t, err)
	return out
}

func TestConvert_Blocks(t *testing.T) {
	src := "# Title\n\n" +
		"Some *emphasis* and `code`.\n\n" +
		"- one\n- two\n  words\n\n" +
		"1. first\n2. second\n\n" +
		"```go\nfmt.Println(\"hi\")\nreturn\n```\n\n" +
		"> quoted text\n\n" +
		"---\n"

	want := "# Title\n\n" +
		"Some emphasis and `code`.\n\n" +
		"- one\n- two words\n\n" +
		"1. first\n2. second\n\n" +
		"    fmt.Println(\"hi\")\n    return\n\n" +
		"> quoted text\n\n" +
		"---"

	assert.Equal(t, want, renderMarkdown(t, src, 40))
}

func TestConvert_ListItemsWrapUnderMarker(t *testing.T) {
	assert.Equal(t, "- alpha beta\n  gamma", renderMarkdown(t, "- alpha beta gamma\n", 12))
}

func TestConvert_BlockquoteMarksOnlyFirstLine(t *testing.T) {
	assert.Equal(t, "> alpha beta\n  gamma", renderMarkdown(t, "> alpha beta gamma\n", 12))
}

func TestConvert_NestedList(t *testing.T) {
	assert.Equal(t, "- a\n  - b", renderMarkdown(t, "- a\n  - b\n", 40))
}

func TestConvert_LooseList(t *testing.T) {
	assert.Equal(t, "- a\n\n- b", renderMarkdown(t, "- a\n\n- b\n", 40))
}

func TestConvert_OrderedStart(t *testing.T) {
	assert.Equal(t, "3) c\n4) d", renderMarkdown(t, "3) c\n4) d\n", 40))
}

func TestConvert_HardBreakKept(t *testing.T) {
	assert.Equal(t, "line one\nline two", renderMarkdown(t, "line one\\\nline two\n", 40))
}

func TestConvert_ParagraphReflows(t *testing.T) {
	src := "the quick brown\nfox jumps over the lazy dog\n"

	assert.Equal(t, "the quick brown fox jumps over the lazy dog", renderMarkdown(t, src, 80))
	assert.Equal(t, "the quick brown fox\njumps over the lazy\ndog", renderMarkdown(t, src, 19))
}

func TestConvert_Links(t *testing.T) {
	assert.Equal(t, "see the docs at https://example.com",
		renderMarkdown(t, "see [the docs](https://x.test) at <https://example.com>\n", 80))
}

func TestConvert_Empty(t *testing.T) {
	assert.Equal(t, "", renderMarkdown(t, "", 40))
}

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader("## Sub heading\n"))
	require.NoError(t, err)
	out, err := render.RenderString(&render.Settings{Width: 40, MaxIndent: 10}, d)
	require.NoError(t, err)
	assert.Equal(t, "## Sub heading", out)
}
