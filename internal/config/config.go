// Package config loads render settings from YAML or CUE files and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pretty/internal/ext"
	"github.com/roach88/pretty/internal/render"
)

// Environment variables read by ApplyEnv.
const (
	EnvWidth     = "PRETTY_WIDTH"
	EnvMaxIndent = "PRETTY_MAX_INDENT"
	EnvTrim      = "PRETTY_TRIM"
)

// MaxWidth is the widest line a configuration or request may ask for.
// Indentation up to MaxIndent is written on every break, so the width
// bounds the work one line break can cause.
const MaxWidth = 10000

// ErrUnsupportedFormat is returned by Load for files that are neither
// YAML nor CUE.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds everything needed to render a document.
type Config struct {
	Width      int      `yaml:"width" json:"width"`
	MaxIndent  int      `yaml:"max_indent" json:"max_indent"`
	Trim       bool     `yaml:"trim" json:"trim"`
	Sections   []string `yaml:"sections" json:"sections,omitempty"`
	TimeLayout string   `yaml:"time_layout" json:"time_layout"`
}

// schema constrains CUE config files. #Config is closed, so unknown
// fields are rejected the same way KnownFields rejects them in YAML.
const schema = `
#Config: {
	width?:       int & >0 & <=10000
	max_indent?:  int & >=0
	trim?:        bool
	sections?:    [...string]
	time_layout?: string
}
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:      render.DefaultWidth,
		MaxIndent:  render.DefaultMaxIndent,
		TimeLayout: ext.DefaultTimeLayout,
	}
}

// Load reads the file at path over Default(). The decoder is picked by
// extension: .yaml and .yml use YAML, .cue uses CUE.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".cue":
		err = decodeCUE(path, data, &cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decodeYAML(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func decodeCUE(path string, data []byte, cfg *Config) error {
	ctx := cuecontext.New()
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("building config schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to parse CUE: %w", err)
	}

	value = def.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid CUE config: %w", err)
	}
	if err := value.Decode(cfg); err != nil {
		return fmt.Errorf("decoding CUE config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from PRETTY_WIDTH, PRETTY_MAX_INDENT and
// PRETTY_TRIM when they are set.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		c.Width = n
	}
	if v, ok := os.LookupEnv(EnvMaxIndent); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxIndent, err)
		}
		c.MaxIndent = n
	}
	if v, ok := os.LookupEnv(EnvTrim); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTrim, err)
		}
		c.Trim = b
	}
	return nil
}

// Validate checks the width and indent limits.
func (c Config) Validate() error {
	if c.Width > MaxWidth {
		return fmt.Errorf("%w: width %d exceeds maximum of %d", render.ErrInvalidSettings, c.Width, MaxWidth)
	}
	s := c.Settings(nil)
	return s.Validate()
}

// Settings returns the render settings for c.
func (c Config) Settings(resolver render.Resolver) render.Settings {
	return render.Settings{
		Width:     c.Width,
		MaxIndent: c.MaxIndent,
		Resolver:  resolver,
	}
}

// Registry returns an extension registry with c's sections enabled.
func (c Config) Registry(opts ...ext.Option) *ext.Registry {
	opts = append(opts, ext.WithSections(c.Sections...), ext.WithTimeLayout(c.TimeLayout))
	return ext.NewRegistry(opts...)
}
