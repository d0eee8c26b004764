package build

import (
	"github.com/LegacyCodeHQ/connectome/internal/config"
	"github.com/spf13/cobra"
)

// ConfigFlags are the command-line overrides shared by every command that
// runs the pipeline.
type ConfigFlags struct {
	ConfigPath string
	Inputs     []string
	Output     string
	Format     string
	Marker     string
	LogLevel   string
}

// BindSourceFlags registers the flags that select and parse input tables.
func (f *ConfigFlags) BindSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.ConfigPath, "config", "C", "", "Config file path (default: ./"+config.DefaultFileName+" if present)")
	cmd.Flags().StringSliceVarP(&f.Inputs, "input", "i", nil, "Input tables in read order as kind:path (comma-separated, kinds: neuron-to-neuron, neuron-to-muscle)")
	cmd.Flags().StringVar(&f.Marker, "marker", "", "Neurotransmitter substring that marks a connection as inhibitory (default: GABA)")
	cmd.Flags().StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// BindOutputFlags registers the flags that control the exported artifact.
func (f *ConfigFlags) BindOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "Output file path (default: connectome.json)")
	cmd.Flags().StringVarP(&f.Format, "format", "f", "", "Output format (json, dot, mermaid)")
}

// Resolve loads the config file and applies any flags set on cmd.
func (f *ConfigFlags) Resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	if changed(cmd, "input") {
		sources := make([]config.SourceConfig, 0, len(f.Inputs))
		for _, spec := range f.Inputs {
			src, err := config.ParseSourceSpec(spec)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}
		cfg.Sources = sources
	}
	if changed(cmd, "output") {
		cfg.Output = f.Output
	}
	if changed(cmd, "format") {
		cfg.Format = f.Format
	}
	if changed(cmd, "marker") {
		cfg.InhibitoryMarker = f.Marker
	}
	if changed(cmd, "log-level") {
		cfg.Logging.Level = f.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
