package render

import (
	"bytes"
	"io"
)

// WriterFunc adapts a function to io.Writer.
type WriterFunc func(p []byte) (int, error)

func (f WriterFunc) Write(p []byte) (int, error) { return f(p) }

// sink forwards text to the output writer. After the first failure every
// later write is dropped and the error is kept for Render to return.
type sink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sink) writeString(str string) {
	if s.err != nil || len(str) == 0 {
		return
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	if err == nil && n < len(str) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = &WriteError{Offset: s.n, Err: err}
	}
}

// TrimTrailingSpace returns a writer that drops the spaces immediately
// before each newline and at the end of the output. Other bytes pass
// through unchanged and in order.
func TrimTrailingSpace(w io.Writer) io.Writer {
	return &trimWriter{w: w}
}

type trimWriter struct {
	w       io.Writer
	pending int
	buf     bytes.Buffer
}

func (t *trimWriter) Write(p []byte) (int, error) {
	t.buf.Reset()
	for _, c := range p {
		switch c {
		case ' ':
			t.pending++
		case '\n':
			t.pending = 0
			t.buf.WriteByte(c)
		default:
			for ; t.pending > 0; t.pending-- {
				t.buf.WriteByte(' ')
			}
			t.buf.WriteByte(c)
		}
	}
	if t.buf.Len() > 0 {
		if _, err := t.w.Write(t.buf.Bytes()); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
