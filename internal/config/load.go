package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/NathanKolpa/pacup/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// Loaded is a validated config together with where it came from.
type Loaded struct {
	Config *Config
	// Source is the file path, or messages.ConfigDefaultsSource when no file exists.
	Source string
}

// Load resolves the config path and reads it. A missing file falls back to
// the defaults unless the path was given explicitly.
func Load(paths Paths) (*Loaded, error) {
	path, explicit := paths.Resolve()
	if path == "" {
		return &Loaded{Config: Default(), Source: messages.ConfigDefaultsSource}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return &Loaded{Config: Default(), Source: messages.ConfigDefaultsSource}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}

	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Source: path}, nil
}

// ParseConfig parses and validates config TOML data from a source identifier.
// Keys missing from data keep their default values.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
