package harness

import "github.com/roach88/pretty/internal/doc"

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when the output matched and every assertion held.
	Pass bool `json:"pass"`

	// Output is the rendered text.
	Output string `json:"output"`

	// Stats describes the document that was rendered.
	Stats doc.Stats `json:"stats"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
