package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAssertions(t *testing.T) {
	output := "abc\nde\nfghij"

	tests := []struct {
		name      string
		assertion Assertion
		width     int
		wantFail  string
	}{
		{name: "max width holds", assertion: Assertion{Type: AssertMaxWidth}, width: 5},
		{name: "max width fails", assertion: Assertion{Type: AssertMaxWidth}, width: 4, wantFail: "line 3 has 5 bytes"},
		{name: "line count holds", assertion: Assertion{Type: AssertLineCount, Count: 3}, width: 5},
		{name: "line count fails", assertion: Assertion{Type: AssertLineCount, Count: 2}, width: 5, wantFail: "Actual: 3 lines"},
		{name: "contains holds", assertion: Assertion{Type: AssertContains, Value: "c\nd"}, width: 5},
		{name: "contains fails", assertion: Assertion{Type: AssertContains, Value: "xyz"}, width: 5, wantFail: "not found"},
		{name: "not contains holds", assertion: Assertion{Type: AssertNotContains, Value: "xyz"}, width: 5},
		{name: "not contains fails", assertion: Assertion{Type: AssertNotContains, Value: "de"}, width: 5, wantFail: "Actual: found"},
		{name: "unknown", assertion: Assertion{Type: "shape"}, width: 5, wantFail: "unknown assertion type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateAssertions(output, tt.width, []Assertion{tt.assertion})
			if tt.wantFail == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.wantFail)
		})
	}
}

func TestAssertionError_ShowsOutput(t *testing.T) {
	err := &AssertionError{Type: "expect", Expected: `"a"`, Actual: `"b "`, Output: "b "}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: expect")
	assert.Contains(t, msg, "  1|b |")
}

func TestEvaluateAssertions_EmptyOutputIsOneLine(t *testing.T) {
	errs := EvaluateAssertions("", 10, []Assertion{{Type: AssertLineCount, Count: 1}})
	assert.Empty(t, errs)
}
