package mcp

import (
	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/config"
)

// NewTestDependencies builds a Dependencies with injected collaborators, for
// tests that need a specific file reader or config without going through
// the CLI/MCP wiring.
func NewTestDependencies(fr domain.FileReader, cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Dependencies{
		fileReader: fr,
		config:     cfg,
		configPath: configPath,
	}
}
