package doc

// Words splits s into text leaves. A space between words becomes Sep and a
// newline becomes Line:
//
//	Words("a b\nc") == Append(Text("a"), Append(Sep(), Append(Text("b"), Append(Line(), Text("c")))))
//
// Runs of delimiters produce zero-length leaves. An empty final word
// (including empty input) becomes Nil.
func Words(s string) Doc {
	var (
		words  []string
		delims []Doc
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ':
			words = append(words, s[start:i])
			delims = append(delims, Sep())
			start = i + 1
		case '\n':
			words = append(words, s[start:i])
			delims = append(delims, Line())
			start = i + 1
		}
	}

	last := s[start:]
	var out Doc = Nil()
	if last != "" {
		out = text(last)
	}
	for i := len(words) - 1; i >= 0; i-- {
		out = Append(text(words[i]), Append(delims[i], out))
	}
	return out
}
