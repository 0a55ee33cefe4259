package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/indigo-web/headercount/errors"
)

// Known report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type (
	Match struct {
		// FoldCase makes the whole header name comparison case-insensitive. By default,
		// only the first letter is allowed to differ in case (as it merely selects the
		// bucket), and the rest must match byte by byte.
		FoldCase bool `yaml:"fold_case" test:"nullable"`
	}

	Input struct {
		// InitialBufferSize is the initial capacity of the line buffer.
		InitialBufferSize int `yaml:"initial_buffer_size"`
		// MaxLineSize is the longest line that can be read. Longer lines fail the whole
		// run with a read error.
		MaxLineSize int `yaml:"max_line_size"`
	}

	Output struct {
		// Format is one of text, json or yaml.
		Format string `yaml:"format"`
	}

	Log struct {
		// Level is the minimal level of diagnostics written to stderr.
		Level string `yaml:"level"`
	}
)

// Config holds everything tunable about a single run.
//
// Always start from Default() and modify it rather than initializing the config by hand,
// as zero values aren't meaningful defaults here.
type Config struct {
	Match  Match  `yaml:"match"`
	Input  Input  `yaml:"input"`
	Output Output `yaml:"output"`
	Log    Log    `yaml:"log"`
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		Match: Match{
			FoldCase: false,
		},
		Input: Input{
			InitialBufferSize: 4096,
			MaxLineSize:       1 << 20,
		},
		Output: Output{
			Format: FormatText,
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// Load reads a YAML config file. Keys missing from the file keep their default values,
// unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrBadConfig, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	switch err = dec.Decode(cfg); err {
	case nil:
	case io.EOF:
		// the document is empty or consists of comments only
		return cfg, nil
	default:
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrBadConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first inconsistent setting, if any.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownFormat, c.Output.Format)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %w", errors.ErrBadConfig, err)
	}

	if c.Input.InitialBufferSize <= 0 || c.Input.MaxLineSize <= 0 {
		return fmt.Errorf("%w: input buffer sizes must be positive", errors.ErrBadConfig)
	}

	if c.Input.InitialBufferSize > c.Input.MaxLineSize {
		return fmt.Errorf(
			"%w: initial buffer size (%d) exceeds max line size (%d)",
			errors.ErrBadConfig, c.Input.InitialBufferSize, c.Input.MaxLineSize,
		)
	}

	return nil
}
