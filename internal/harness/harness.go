package harness

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roach88/pretty/internal/doc"
	"github.com/roach88/pretty/internal/ext"
	"github.com/roach88/pretty/internal/render"
	"github.com/roach88/pretty/internal/source"
	"github.com/roach88/pretty/internal/testutil"
)

// Run builds and renders a scenario and checks the output.
//
// Build and render failures are reported in the result unless the scenario
// expects them through expect_error. The returned error is only for
// scenarios that cannot be run at all, such as a missing source_file.
//
// Execution flow:
// 1. Read the source and build the document
// 2. Render with a fixed clock and the scenario's sections
// 3. Compare against expect and evaluate assertions
// 4. Free the document
func Run(scenario *Scenario) (*Result, error) {
	src, err := scenarioSource(scenario)
	if err != nil {
		return nil, err
	}
	format, err := source.ParseFormat(scenario.Format)
	if err != nil {
		return nil, err
	}

	result := NewResult()

	d, err := source.Build(scenario.Name, format, src)
	if err != nil {
		checkError(result, scenario, "build", err)
		return result, nil
	}

	reg := ext.NewRegistry(
		ext.WithClock(testutil.NewFixedClock(scenario.Now)),
		ext.WithSections(scenario.Sections...),
	)
	defer func() {
		if err := doc.Free(d, reg.Dispose); err != nil {
			result.AddError(fmt.Sprintf("free: %v", err))
		}
	}()

	result.Stats = doc.Measure(d)

	var buf bytes.Buffer
	var w io.Writer = &buf
	if scenario.Trim {
		w = render.TrimTrailingSpace(&buf)
	}
	settings := render.Settings{
		Width:     scenario.Width,
		MaxIndent: scenario.MaxIndent,
		Resolver:  reg.Resolver(),
	}
	err = render.Render(w, &settings, d)
	result.Output = buf.String()
	if err != nil {
		checkError(result, scenario, "render", err)
		return result, nil
	}
	if scenario.ExpectError != "" {
		result.AddError(fmt.Sprintf("expected error containing %q, got none", scenario.ExpectError))
	}

	if scenario.Expect != nil && result.Output != *scenario.Expect {
		result.AddError((&AssertionError{
			Type:     "expect",
			Expected: fmt.Sprintf("%q", *scenario.Expect),
			Actual:   fmt.Sprintf("%q", result.Output),
			Output:   result.Output,
		}).Error())
	}

	for _, msg := range EvaluateAssertions(result.Output, scenario.Width, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func scenarioSource(s *Scenario) ([]byte, error) {
	if s.SourceFile == "" {
		return []byte(s.Source), nil
	}
	data, err := os.ReadFile(s.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	return data, nil
}

func checkError(result *Result, s *Scenario, stage string, err error) {
	if s.ExpectError == "" {
		result.AddError(fmt.Sprintf("%s failed: %v", stage, err))
		return
	}
	if !strings.Contains(err.Error(), s.ExpectError) {
		result.AddError(fmt.Sprintf("%s error %q does not contain %q", stage, err.Error(), s.ExpectError))
	}
}

// RunAll runs every scenario and returns the results in order.
func RunAll(scenarios []*Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for _, s := range scenarios {
		r, err := Run(s)
		if err != nil {
			return results, fmt.Errorf("%s: %w", s.Name, err)
		}
		results = append(results, r)
	}
	return results, nil
}
