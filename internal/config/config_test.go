package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/connectome/connectome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connectome.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_MatchesOriginalPipeline(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	sources, err := cfg.ConnectomeSources()
	require.NoError(t, err)
	assert.Equal(t, []connectome.Source{
		{Kind: connectome.NeuronToNeuron, Path: "./CElegansNeuronTables/Connectome.csv"},
		{Kind: connectome.NeuronToMuscle, Path: "./CElegansNeuronTables/NeuronsToMuscle.csv"},
	}, sources)
	assert.Equal(t, "connectome.json", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "GABA", cfg.InhibitoryMarker)
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
sources:
  - kind: neuron-to-muscle
    path: muscles.csv
  - kind: neuron-to-neuron
    path: neurons.csv
output: out/graph.dot
format: dot
logging:
  level: debug
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []SourceConfig{
		{Kind: "neuron-to-muscle", Path: "muscles.csv"},
		{Kind: "neuron-to-neuron", Path: "neurons.csv"},
	}, cfg.Sources)
	assert.Equal(t, "out/graph.dot", cfg.Output)
	assert.Equal(t, "dot", cfg.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "GABA", cfg.InhibitoryMarker)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "sources: [unterminated\n")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_MissingExplicitFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_MissingDefaultFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("output: custom.json\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.Output)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "no sources", mutate: func(c *Config) { c.Sources = nil }, wantErr: "no sources configured"},
		{name: "missing path", mutate: func(c *Config) { c.Sources[0].Path = "" }, wantErr: "source 1: path is required"},
		{name: "unknown kind", mutate: func(c *Config) { c.Sources[1].Kind = "glia" }, wantErr: `source 2: unknown kind "glia"`},
		{name: "empty marker", mutate: func(c *Config) { c.InhibitoryMarker = "" }, wantErr: "inhibitory_marker must not be empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseSourceSpec(t *testing.T) {
	src, err := ParseSourceSpec("neuron-to-muscle:tables/NeuronsToMuscle.csv")
	require.NoError(t, err)
	assert.Equal(t, SourceConfig{Kind: "neuron-to-muscle", Path: "tables/NeuronsToMuscle.csv"}, src)

	src, err = ParseSourceSpec(`neuron-to-neuron:C:\tables\Connectome.csv`)
	require.NoError(t, err)
	assert.Equal(t, `C:\tables\Connectome.csv`, src.Path)

	for _, bad := range []string{"Connectome.csv", "neuron-to-neuron:", ":x.csv", "glia:x.csv"} {
		_, err := ParseSourceSpec(bad)
		assert.Error(t, err, bad)
	}
}
