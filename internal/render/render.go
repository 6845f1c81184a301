package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/logging"
)

// printer holds the state of one render call. indent and the flattened
// flag travel down the recursion; remaining is shared by the whole walk.
type printer struct {
	settings  *Settings
	out       *sink
	remaining int
	err       error
}

// Render lays out d within s.Width and writes it to w.
//
// The returned error is either ErrInvalidSettings, ErrResolveLimit or a
// *WriteError from w. Output already written before a failure is not
// retracted.
func Render(w io.Writer, s *Settings, d doc.Doc) error {
	if err := s.Validate(); err != nil {
		return err
	}

	p := &printer{
		settings:  s,
		out:       &sink{w: w},
		remaining: s.Width,
	}
	p.print(d, 0, false)

	log := logging.Logger()
	if p.err == nil {
		p.err = p.out.err
	}
	if p.err != nil {
		log.Warn("render failed", "width", s.Width, "bytes", p.out.n, "error", p.err)
		return p.err
	}
	log.Debug("render finished", "width", s.Width, "max_indent", s.MaxIndent, "bytes", p.out.n)
	return nil
}

// RenderString renders d to a string.
func RenderString(s *Settings, d doc.Doc) (string, error) {
	var b strings.Builder
	if err := Render(&b, s, d); err != nil {
		return b.String(), err
	}
	return b.String(), nil
}

// CanFlatten reports whether d fits in *budget columns with every Line
// rendered as a space. On success *budget holds the columns left over; on
// failure its value is meaningless. Extensions resolve through s.Resolver
// exactly as they do in Render.
func CanFlatten(s *Settings, d doc.Doc, budget *int) bool {
	p := &printer{settings: s, out: &sink{w: io.Discard}}
	return p.fits(d, budget)
}

// resolve replaces extension nodes with the core node they stand for.
// With no resolver, or once the render has failed, extensions become Nil.
func (p *printer) resolve(d doc.Doc) doc.Doc {
	for steps := 0; ; steps++ {
		ext, ok := d.(*doc.Extension)
		if !ok {
			if d == nil {
				return doc.Nil()
			}
			return d
		}
		if p.settings.Resolver == nil || p.err != nil {
			return doc.Nil()
		}
		if steps == MaxResolveSteps {
			p.err = fmt.Errorf("%w: tag %d after %d steps", ErrResolveLimit, int(ext.Tag), steps)
			return doc.Nil()
		}
		d = p.settings.Resolver(p.settings, ext)
	}
}

// fits is the flatten-feasibility check. It consumes *budget as it goes.
func (p *printer) fits(d doc.Doc, budget *int) bool {
	switch n := p.resolve(d).(type) {
	case doc.NilDoc:
		return true
	case doc.SepDoc:
		if *budget > 0 {
			*budget--
		}
		return true
	case *doc.TextDoc:
		if *budget < n.Len() {
			return false
		}
		*budget -= n.Len()
		return true
	case doc.LineDoc:
		if *budget < 1 {
			return false
		}
		*budget--
		return true
	case *doc.NestDoc:
		return p.fits(n.Doc, budget)
	case *doc.AppendDoc:
		if !p.fits(n.Left, budget) {
			return false
		}
		return p.fits(n.Right, budget)
	case *doc.GroupDoc:
		return p.fits(n.Doc, budget)
	default:
		return false
	}
}

func (p *printer) print(d doc.Doc, indent int, flat bool) {
	if p.err != nil {
		return
	}
	switch n := p.resolve(d).(type) {
	case doc.NilDoc:
	case doc.SepDoc:
		if p.remaining != p.settings.lineBudget(indent) && p.remaining != 0 {
			p.out.writeString(" ")
			p.remaining--
		}
	case *doc.TextDoc:
		p.text(n.Text, indent)
	case doc.LineDoc:
		if flat {
			p.out.writeString(" ")
			if p.remaining > 0 {
				p.remaining--
			}
			return
		}
		p.newline(indent)
	case *doc.NestDoc:
		p.print(n.Doc, p.settings.clampIndent(indent+n.Indent), flat)
	case *doc.AppendDoc:
		p.print(n.Left, indent, flat)
		p.print(n.Right, indent, flat)
	case *doc.GroupDoc:
		budget := p.remaining
		p.print(n.Doc, indent, p.fits(n.Doc, &budget))
	}
}

// text writes s, breaking the line first if s does not fit and hard
// wrapping it every lineBudget bytes if it is longer than a whole line.
// Breaks here are real newlines even inside a flattened group.
func (p *printer) text(s string, indent int) {
	if len(s) > p.remaining {
		p.newline(indent)
	}
	for len(s) > p.remaining {
		p.out.writeString(s[:p.remaining])
		s = s[p.remaining:]
		p.remaining = 0
		p.newline(indent)
	}
	p.out.writeString(s)
	p.remaining -= len(s)
}

// spaces is sliced to write indentation without building a string per
// line break.
var spaces = strings.Repeat(" ", 64)

func (p *printer) newline(indent int) {
	p.out.writeString("\n")
	for left := indent; left > 0; {
		n := min(left, len(spaces))
		p.out.writeString(spaces[:n])
		left -= n
	}
	p.remaining = p.settings.lineBudget(indent)
}
