package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tx := func(s string) Doc { return &TextDoc{Text: s} }

	tests := []struct {
		name string
		in   string
		want Doc
	}{
		{
			name: "empty",
			in:   "",
			want: Nil(),
		},
		{
			name: "single word",
			in:   "hello",
			want: tx("hello"),
		},
		{
			name: "space becomes sep",
			in:   "a b",
			want: Append(tx("a"), Append(Sep(), tx("b"))),
		},
		{
			name: "newline becomes line",
			in:   "a b\nc",
			want: Append(tx("a"), Append(Sep(), Append(tx("b"), Append(Line(), tx("c"))))),
		},
		{
			name: "trailing delimiter ends in nil",
			in:   "a ",
			want: Append(tx("a"), Append(Sep(), Nil())),
		},
		{
			name: "double space yields empty text",
			in:   "a  b",
			want: Append(tx("a"), Append(Sep(), Append(tx(""), Append(Sep(), tx("b"))))),
		},
		{
			name: "leading space",
			in:   " a",
			want: Append(tx(""), Append(Sep(), tx("a"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestWordsTextsNeverContainDelimiters(t *testing.T) {
	d := Words("one two\nthree  four\n\nfive")
	Walk(d, func(n Doc) {
		if td, ok := n.(*TextDoc); ok {
			assert.NotContains(t, td.Text, " ")
			assert.NotContains(t, td.Text, "\n")
		}
	})
}
