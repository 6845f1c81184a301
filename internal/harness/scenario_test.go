package harness

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "A basic scenario"
format: words
width: 12
max_indent: 4
trim: true
sections: [a, b]
now: 2024-05-06T07:08:09Z
source: "one two"
expect: "one two"
assertions:
  - type: contains
    value: "two"
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, "words", s.Format)
	assert.Equal(t, 12, s.Width)
	assert.Equal(t, 4, s.MaxIndent)
	assert.True(t, s.Trim)
	assert.Equal(t, []string{"a", "b"}, s.Sections)
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), s.Now.UTC())
	require.NotNil(t, s.Expect)
	assert.Equal(t, "one two", *s.Expect)
	require.Len(t, s.Assertions, 1)
	assert.Equal(t, path, s.Path())
}

func TestLoadScenario_SourceFileIsRelative(t *testing.T) {
	path := writeScenario(t, `
name: rel
description: "source file next to the scenario"
width: 10
max_indent: 2
source_file: doc.pd
expect: ""
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "doc.pd"), s.SourceFile)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "misspelled field"
width: 10
max_indent: 2
source: "x"
expects: "x"
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Missing(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestValidateScenario(t *testing.T) {
	expect := "x"
	base := func() Scenario {
		return Scenario{
			Name:        "n",
			Description: "d",
			Width:       10,
			MaxIndent:   2,
			Source:      "x",
			Expect:      &expect,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Scenario)
		want   string
	}{
		{name: "no name", mutate: func(s *Scenario) { s.Name = "" }, want: "name is required"},
		{name: "no description", mutate: func(s *Scenario) { s.Description = "" }, want: "description is required"},
		{name: "bad format", mutate: func(s *Scenario) { s.Format = "rtf" }, want: "unknown format"},
		{name: "no source", mutate: func(s *Scenario) { s.Source = "" }, want: "one of source or source_file"},
		{name: "two sources", mutate: func(s *Scenario) { s.SourceFile = "f" }, want: "mutually exclusive"},
		{name: "nothing to check", mutate: func(s *Scenario) { s.Expect = nil }, want: "at least one of"},
		{
			name:   "assertion without type",
			mutate: func(s *Scenario) { s.Assertions = []Assertion{{}} },
			want:   "assertions[0]: type is required",
		},
		{
			name:   "line_count without count",
			mutate: func(s *Scenario) { s.Assertions = []Assertion{{Type: AssertLineCount}} },
			want:   "count must be positive",
		},
		{
			name:   "contains without value",
			mutate: func(s *Scenario) { s.Assertions = []Assertion{{Type: AssertContains}} },
			want:   "value is required for contains",
		},
		{
			name:   "unknown assertion",
			mutate: func(s *Scenario) { s.Assertions = []Assertion{{Type: "shape"}} },
			want:   `unknown assertion type "shape"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base()
			tt.mutate(&s)
			err := validateScenario(&s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	s := base()
	assert.NoError(t, validateScenario(&s))
}

func TestLoadDir(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, scenarios, 8)
	assert.Equal(t, "group_fits", scenarios[0].Name)
	assert.Equal(t, "hard_wrap", scenarios[7].Name)
}

func TestLoadDir_Empty(t *testing.T) {
	_, err := LoadDir(t.TempDir())
	assert.ErrorContains(t, err, "no scenario files found")
}
