// Package harness runs render scenarios: a source document, the settings
// to render it with, and what the output must look like.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: group_breaks
//	description: "A group that does not fit breaks every line"
//	format: markup          # markup | markdown | words
//	width: 8
//	max_indent: 4
//	trim: false             # drop trailing spaces
//	sections: [debug]       # enabled @section names
//	now: 2024-01-02T15:04:05Z
//	source: |
//	  group { "hello" line "world" }
//	expect: "hello\nworld"
//	assertions:
//	  - type: max_width
//	  - type: line_count
//	    count: 2
//
// Exactly one of source and source_file is required. source_file is
// relative to the scenario file.
//
// # Assertion Types
//
//   - max_width: no output line is longer than width
//   - line_count: the output has exactly count lines
//   - contains: the output contains value
//   - not_contains: the output does not contain value
//
// # Golden Files
//
// RunWithGolden compares the rendered output against
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
//
// Scenarios render with a fixed clock, so output is deterministic.
package harness
