// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the graphprops CLI.
//
//	engine:
//	  exact_coloring_max_vertices: 20   # 0 = always exact
//	  hamiltonian_timeout: 10s          # 0s = no timeout
//	log:
//	  level: info                       # debug|info|warn|error
//	  format: console                   # console|json
//	metrics:
//	  textfile: ""                      # Prometheus textfile path; "" = off
//
// Missing keys keep the values of Default. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default values.
const (
	DefaultExactColoringMaxVertices = 20
	DefaultHamiltonianTimeout       = 10 * time.Second
	DefaultLogLevel                 = "info"
	DefaultLogFormat                = "console"
)

var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	Engine  Engine  `yaml:"engine"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Engine tunes the exponential searches.
type Engine struct {
	// ExactColoringMaxVertices is the largest graph for which an exact
	// chromatic number is computed; larger graphs fall back to greedy.
	ExactColoringMaxVertices int `yaml:"exact_coloring_max_vertices" validate:"gte=0"`

	// HamiltonianTimeout bounds the Hamiltonian-cycle search.
	HamiltonianTimeout Duration `yaml:"hamiltonian_timeout" validate:"gte=0"`
}

// Log selects the zap logger flavour.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Metrics selects where the Prometheus textfile is written.
// An empty Textfile disables metrics.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Duration is a time.Duration that decodes from strings such as "10s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = Duration(v)

	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: Engine{
			ExactColoringMaxVertices: DefaultExactColoringMaxVertices,
			HamiltonianTimeout:       Duration(DefaultHamiltonianTimeout),
		},
		Log: Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Parse decodes r over Default and validates the result.
// An empty document yields Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Validate checks the struct-tag constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s: failed %q (got %v)", ErrInvalidConfig, e.Namespace(), e.Tag()+paramSuffix(e.Param()), e.Value())
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}

	return "=" + p
}
