package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-pdg/jpdg/internal/config"
)

// InitCommand represents the init command.
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command.
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force:      false,
		configPath: "jpdg.toml",
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization.
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a jpdg configuration file",
		Long: `Initialize a jpdg configuration file in the current directory.

Creates a jpdg.toml file with the default PDG edge-layer settings and
file-selection patterns, which you can then edit by hand.

Examples:
  # Create jpdg.toml in current directory
  jpdg init

  # Create config file with a custom name
  jpdg init --config myconfig.toml

  # Overwrite an existing configuration file
  jpdg init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", "jpdg.toml", "Configuration file path")

	return cmd
}

func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(configPath), err)
	}

	if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "\nTo customize jpdg for your project:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  1. Edit %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  2. Adjust the PDG edge layers and file patterns as needed\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  3. Run 'jpdg analyze .' to use your configuration\n")

	return nil
}

// NewInitCmd creates and returns the init cobra command.
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
