package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/roach88/pretty/internal/config"
	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/ext"
	"github.com/roach88/pretty/internal/render"
	"github.com/roach88/pretty/internal/source"
)

// renderParams are the query parameters of a render or measure request.
type renderParams struct {
	format    source.Format
	width     int
	maxIndent int
	trim      bool
	sections  []string
}

func (s *Server) parseParams(r *http.Request) (renderParams, error) {
	q := r.URL.Query()
	p := renderParams{
		width:     s.cfg.Width,
		maxIndent: s.cfg.MaxIndent,
		trim:      s.cfg.Trim,
		sections:  append(append([]string(nil), s.cfg.Sections...), q["section"]...),
	}

	var err error
	if p.format, err = source.ParseFormat(q.Get("format")); err != nil {
		return p, err
	}
	if v := q.Get("width"); v != "" {
		if p.width, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("invalid width: %q", v)
		}
		if p.width > config.MaxWidth {
			return p, fmt.Errorf("width %d exceeds maximum of %d", p.width, config.MaxWidth)
		}
	}
	if v := q.Get("max_indent"); v != "" {
		if p.maxIndent, err = strconv.Atoi(v); err != nil {
			return p, fmt.Errorf("invalid max_indent: %q", v)
		}
		if p.maxIndent > config.MaxWidth {
			return p, fmt.Errorf("max_indent %d exceeds maximum of %d", p.maxIndent, config.MaxWidth)
		}
	}
	if v := q.Get("trim"); v != "" {
		if p.trim, err = strconv.ParseBool(v); err != nil {
			return p, fmt.Errorf("invalid trim: %q", v)
		}
	}
	return p, nil
}

// readDocument parses the parameters and builds the request body into a
// document. On failure it has already written the error response.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (renderParams, doc.Doc, bool) {
	p, err := s.parseParams(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return p, nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", MaxBodyBytes), http.StatusRequestEntityTooLarge)
			return p, nil, false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return p, nil, false
	}

	d, err := source.Build("request", p.format, body)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return p, nil, false
	}
	return p, d, true
}

func (s *Server) registry(p renderParams) *ext.Registry {
	return ext.NewRegistry(
		ext.WithClock(s.clock),
		ext.WithTimeLayout(s.cfg.TimeLayout),
		ext.WithSections(p.sections...),
	)
}

func (s *Server) free(d doc.Doc, reg *ext.Registry) {
	if err := doc.Free(d, reg.Dispose); err != nil {
		s.log.Warn("free failed", "error", err)
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	p, d, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	reg := s.registry(p)
	defer s.free(d, reg)

	settings := render.Settings{Width: p.width, MaxIndent: p.maxIndent, Resolver: reg.Resolver()}

	var buf bytes.Buffer
	var out io.Writer = &buf
	if p.trim {
		out = render.TrimTrailingSpace(&buf)
	}
	if err := render.Render(out, &settings, d); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, render.ErrInvalidSettings) {
			code = http.StatusBadRequest
		}
		jsonError(w, err.Error(), code)
		return
	}

	id := s.ids.NewID()
	s.log.Debug("rendered",
		"render_id", id,
		"format", string(p.format),
		"width", p.width,
		"bytes", buf.Len(),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Render-ID", id)
	w.Write(buf.Bytes())
}

// measureResponse describes a document without rendering it.
type measureResponse struct {
	Stats doc.Stats `json:"stats"`
	// Fits reports whether the whole document fits on one line of width.
	Fits bool `json:"fits"`
	// Remaining is the number of columns left over when Fits is true.
	Remaining int `json:"remaining,omitempty"`
}

func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	p, d, ok := s.readDocument(w, r)
	if !ok {
		return
	}
	reg := s.registry(p)
	defer s.free(d, reg)

	settings := render.Settings{Width: p.width, MaxIndent: p.maxIndent, Resolver: reg.Resolver()}
	if err := settings.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := measureResponse{Stats: doc.Measure(d)}
	budget := p.width
	if render.CanFlatten(&settings, d, &budget) {
		resp.Fits = true
		resp.Remaining = budget
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"formats": source.Formats()})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
