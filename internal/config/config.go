// Package config loads connectome pipeline settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/LegacyCodeHQ/connectome/connectome"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file picked up from the working directory when
// no path is given.
const DefaultFileName = ".connectome.yaml"

// Config contains all pipeline settings.
type Config struct {
	// Sources are read in order; later sources overwrite earlier weights.
	Sources []SourceConfig `yaml:"sources"`

	// Output is the path the serialized graph is written to.
	Output string `yaml:"output"`

	// Format is the output format name (json, dot, mermaid).
	Format string `yaml:"format"`

	// InhibitoryMarker is the neurotransmitter substring that flips a connection's sign.
	InhibitoryMarker string `yaml:"inhibitory_marker"`

	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes one input table.
type SourceConfig struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level is one of "debug", "info" (default), "warn", "error".
	Level string `yaml:"level"`
}

// Default returns the configuration of the original pipeline: the neuron
// table first, then the neuron-to-muscle table, written to connectome.json.
func Default() *Config {
	return &Config{
		Sources: []SourceConfig{
			{Kind: connectome.NeuronToNeuron.String(), Path: "./CElegansNeuronTables/Connectome.csv"},
			{Kind: connectome.NeuronToMuscle.String(), Path: "./CElegansNeuronTables/NeuronsToMuscle.csv"},
		},
		Output:           "connectome.json",
		Format:           "json",
		InhibitoryMarker: connectome.DefaultInhibitoryMarker,
		Logging:          LoggingConfig{Level: "info"},
	}
}

// Load returns the defaults overlaid with the file at path.
// An empty path loads DefaultFileName if it exists and the defaults otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the YAML file at path on top of the defaults.
// Fields missing from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a build.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}
	for i, src := range c.Sources {
		if src.Path == "" {
			return fmt.Errorf("source %d: path is required", i+1)
		}
		if _, ok := connectome.ParseSourceKind(src.Kind); !ok {
			return fmt.Errorf("source %d: unknown kind %q (valid options: %s)", i+1, src.Kind, connectome.SupportedKinds())
		}
	}
	if c.InhibitoryMarker == "" {
		return fmt.Errorf("inhibitory_marker must not be empty")
	}
	return nil
}

// ConnectomeSources converts the configured sources into builder sources.
func (c *Config) ConnectomeSources() ([]connectome.Source, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sources := make([]connectome.Source, 0, len(c.Sources))
	for _, src := range c.Sources {
		kind, _ := connectome.ParseSourceKind(src.Kind)
		sources = append(sources, connectome.Source{Kind: kind, Path: src.Path})
	}
	return sources, nil
}

// ParseSourceSpec parses a "kind:path" command-line source.
func ParseSourceSpec(spec string) (SourceConfig, error) {
	kind, path, ok := strings.Cut(spec, ":")
	if !ok || kind == "" || path == "" {
		return SourceConfig{}, fmt.Errorf("invalid source %q (expected kind:path)", spec)
	}
	if _, ok := connectome.ParseSourceKind(kind); !ok {
		return SourceConfig{}, fmt.Errorf("invalid source %q: unknown kind %q (valid options: %s)", spec, kind, connectome.SupportedKinds())
	}
	return SourceConfig{Kind: kind, Path: path}, nil
}
