package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
// It includes the rendered output to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Output   string // Full output for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull output:\n")
	for i, line := range strings.Split(e.Output, "\n") {
		fmt.Fprintf(&buf, "  %3d|%s|\n", i+1, line)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against output and returns
// the failure messages.
func EvaluateAssertions(output string, width int, assertions []Assertion) []string {
	var errs []string
	for _, a := range assertions {
		var err error
		switch a.Type {
		case AssertMaxWidth:
			err = assertMaxWidth(output, width)
		case AssertLineCount:
			err = assertLineCount(output, a)
		case AssertContains:
			err = assertContains(output, a, true)
		case AssertNotContains:
			err = assertContains(output, a, false)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// assertMaxWidth checks that no line is longer than width bytes.
func assertMaxWidth(output string, width int) error {
	for i, line := range strings.Split(output, "\n") {
		if len(line) > width {
			return &AssertionError{
				Type:     AssertMaxWidth,
				Expected: fmt.Sprintf("every line at most %d bytes", width),
				Actual:   fmt.Sprintf("line %d has %d bytes", i+1, len(line)),
				Output:   output,
			}
		}
	}
	return nil
}

func assertLineCount(output string, a Assertion) error {
	n := strings.Count(output, "\n") + 1
	if n != a.Count {
		return &AssertionError{
			Type:     AssertLineCount,
			Expected: fmt.Sprintf("%d lines", a.Count),
			Actual:   fmt.Sprintf("%d lines", n),
			Output:   output,
		}
	}
	return nil
}

func assertContains(output string, a Assertion, want bool) error {
	if strings.Contains(output, a.Value) == want {
		return nil
	}
	actual := "not found"
	if !want {
		actual = "found"
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%q", a.Value),
		Actual:   actual,
		Output:   output,
	}
}
