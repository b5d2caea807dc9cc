// Package config loads the PDG configuration surface and CLI defaults
// that cmd/jpdg and mcp/ share: which optional PDG edge layers to build
// and how batch runs resolve/filter/emit files. Load strategy is TOML/YAML
// via viper, with default-file discovery and flag-aware merging; the
// quality-metric sections some sibling CLIs carry (complexity, dead code,
// clone detection, architecture, dependencies) have no PDG equivalent and
// are dropped.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/go-pdg/jpdg/domain"
)

// Config is the on-disk/CLI-flag configuration surface for one jpdg run.
type Config struct {
	PDG      PDGConfig      `mapstructure:"pdg" yaml:"pdg" toml:"pdg"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" toml:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" toml:"analysis"`
}

// PDGConfig mirrors internal/pdg.Config one-for-one; it is the
// TOML/YAML-serializable form the CLI and MCP layers load and translate
// into a pdg.Config before building.
type PDGConfig struct {
	BuildControlDependence                        bool `mapstructure:"build_control_dependence" yaml:"build_control_dependence" toml:"build_control_dependence"`
	BuildDataDependence                           bool `mapstructure:"build_data_dependence" yaml:"build_data_dependence" toml:"build_data_dependence"`
	BuildExecutionDependence                      bool `mapstructure:"build_execution_dependence" yaml:"build_execution_dependence" toml:"build_execution_dependence"`
	ControlDependenceFromEnterToAllNodes          bool `mapstructure:"control_dependence_from_enter_to_all_nodes" yaml:"control_dependence_from_enter_to_all_nodes" toml:"control_dependence_from_enter_to_all_nodes"`
	ControlDependenceFromEnterToParameterNodes    bool `mapstructure:"control_dependence_from_enter_to_parameter_nodes" yaml:"control_dependence_from_enter_to_parameter_nodes" toml:"control_dependence_from_enter_to_parameter_nodes"`
	AvoidDefPropagationWhenBuildingDataDependence bool `mapstructure:"avoid_def_propagation_when_building_data_dependence" yaml:"avoid_def_propagation_when_building_data_dependence" toml:"avoid_def_propagation_when_building_data_dependence"`
}

// OutputConfig holds output formatting defaults.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	Path   string `mapstructure:"path" yaml:"path" toml:"path"`
}

// AnalysisConfig holds file-resolution defaults.
type AnalysisConfig struct {
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns" toml:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns" toml:"exclude_patterns"`
	Recursive       bool     `mapstructure:"recursive" yaml:"recursive" toml:"recursive"`
	NoProgress      bool     `mapstructure:"no_progress" yaml:"no_progress" toml:"no_progress"`
}

// DefaultConfig returns a Config with the same PDG defaults as
// pdg.DefaultConfig, plus CLI output/analysis defaults for Java sources.
func DefaultConfig() *Config {
	return &Config{
		PDG: PDGConfig{
			BuildControlDependence:                     true,
			BuildDataDependence:                        true,
			BuildExecutionDependence:                   true,
			ControlDependenceFromEnterToAllNodes:       false,
			ControlDependenceFromEnterToParameterNodes: true,
			AvoidDefPropagationWhenBuildingDataDependence: true,
		},
		Output: OutputConfig{
			Format: string(domain.OutputFormatText),
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{"**/*.java"},
			ExcludePatterns: []string{"**/*Test.java", "**/Test*.java"},
			Recursive:       true,
			NoProgress:      false,
		},
	}
}

// LoadConfig loads configuration from configPath, or from a default
// config file discovered in the current or home directory, or falls back
// to DefaultConfig if none exists.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func findDefaultConfig() string {
	candidates := []string{
		"jpdg.yaml",
		"jpdg.yml",
		".jpdg.yaml",
		".jpdg.yml",
		"jpdg.toml",
		".jpdg.toml",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// SaveConfig writes cfg to path as TOML, for the CLI's init subcommand to
// seed a new jpdg.toml a user can then edit by hand.
func SaveConfig(cfg *Config, path string) error {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	switch domain.OutputFormat(c.Output.Format) {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatDOT, "":
	default:
		return fmt.Errorf("output.format must be one of text|json|yaml|dot, got %q", c.Output.Format)
	}
	return nil
}

// ToAnalyzeRequest builds an AnalyzeRequest for paths using this config's
// PDG, output, and analysis defaults.
func (c *Config) ToAnalyzeRequest(paths []string) *domain.AnalyzeRequest {
	return &domain.AnalyzeRequest{
		Paths:                                 paths,
		Recursive:                             c.Analysis.Recursive,
		IncludePatterns:                       c.Analysis.IncludePatterns,
		ExcludePatterns:                       c.Analysis.ExcludePatterns,
		BuildControlDependence:                c.PDG.BuildControlDependence,
		BuildDataDependence:                   c.PDG.BuildDataDependence,
		BuildExecutionDependence:              c.PDG.BuildExecutionDependence,
		ControlDependenceFromEnterToAllNodes:  c.PDG.ControlDependenceFromEnterToAllNodes,
		ControlDependenceFromEnterToParameterNodes:    c.PDG.ControlDependenceFromEnterToParameterNodes,
		AvoidDefPropagationWhenBuildingDataDependence: c.PDG.AvoidDefPropagationWhenBuildingDataDependence,
		OutputFormat: domain.OutputFormat(c.Output.Format),
		OutputPath:   c.Output.Path,
		NoProgress:   c.Analysis.NoProgress,
	}
}
