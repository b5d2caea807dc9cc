package mcp

import (
	"github.com/go-pdg/jpdg/app"
	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/config"
	"github.com/go-pdg/jpdg/internal/version"
	"github.com/go-pdg/jpdg/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	fileReader domain.FileReader
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		fileReader: service.NewFileReader(),
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to
// trigger discovery on the next LoadConfig call).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// BuildAnalyzeUseCase assembles a fresh AnalyzeUseCase with injected
// dependencies, with no progress reporting (MCP calls are not interactive).
func (d *Dependencies) BuildAnalyzeUseCase() *app.AnalyzeUseCase {
	return app.NewAnalyzeUseCase(d.fileReader, nil, version.Short())
}
