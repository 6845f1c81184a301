package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pretty/internal/source"
)

// Scenario is a single render test.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Format is the source language. Empty means markup.
	Format string `yaml:"format,omitempty"`

	// Width and MaxIndent are the render settings.
	Width     int `yaml:"width"`
	MaxIndent int `yaml:"max_indent"`

	// Trim drops trailing spaces from every line.
	Trim bool `yaml:"trim,omitempty"`

	// Sections lists the @section names to enable.
	Sections []string `yaml:"sections,omitempty"`

	// Now fixes the clock seen by @time. Zero means testutil.Epoch.
	Now time.Time `yaml:"now,omitempty"`

	// Source is the inline document text.
	Source string `yaml:"source,omitempty"`

	// SourceFile is a path to the document, relative to the scenario.
	SourceFile string `yaml:"source_file,omitempty"`

	// Expect is the exact expected output, if set.
	Expect *string `yaml:"expect,omitempty"`

	// ExpectError is a substring of the expected build or render error.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions check properties of the output.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// path is the file the scenario was loaded from.
	path string
}

// Assertion checks a property of the rendered output.
type Assertion struct {
	// Type is one of max_width, line_count, contains, not_contains.
	Type string `yaml:"type"`

	// Value is the text searched for by contains and not_contains.
	Value string `yaml:"value,omitempty"`

	// Count is the expected number of lines for line_count.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertMaxWidth    = "max_width"
	AssertLineCount   = "line_count"
	AssertContains    = "contains"
	AssertNotContains = "not_contains"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	scenario.path = path
	if scenario.SourceFile != "" && !filepath.IsAbs(scenario.SourceFile) {
		scenario.SourceFile = filepath.Join(filepath.Dir(path), scenario.SourceFile)
	}
	return scenario, nil
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // catches typos like "expects:"
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadDir loads every .yaml and .yml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", dir)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Path returns the file the scenario was loaded from, if any.
func (s *Scenario) Path() string {
	return s.path
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := source.ParseFormat(s.Format); err != nil {
		return err
	}

	switch {
	case s.Source == "" && s.SourceFile == "":
		return fmt.Errorf("one of source or source_file is required")
	case s.Source != "" && s.SourceFile != "":
		return fmt.Errorf("source and source_file are mutually exclusive")
	}

	if s.Expect == nil && s.ExpectError == "" && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one of expect, expect_error or assertions is required")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertMaxWidth:
	case AssertLineCount:
		if a.Count < 1 {
			return fmt.Errorf("assertions[%d]: count must be positive for line_count", index)
		}
	case AssertContains, AssertNotContains:
		if a.Value == "" {
			return fmt.Errorf("assertions[%d]: value is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
