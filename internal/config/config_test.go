package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.PDG.BuildControlDependence {
		t.Error("expected control dependence to be built by default")
	}
	if !cfg.PDG.BuildDataDependence {
		t.Error("expected data dependence to be built by default")
	}
	if !cfg.PDG.BuildExecutionDependence {
		t.Error("expected execution dependence to be built by default")
	}
	if cfg.PDG.ControlDependenceFromEnterToAllNodes {
		t.Error("expected enter-to-all-nodes control dependence to default false")
	}
	if !cfg.PDG.ControlDependenceFromEnterToParameterNodes {
		t.Error("expected enter-to-parameter-nodes control dependence to default true")
	}
	if !cfg.PDG.AvoidDefPropagationWhenBuildingDataDependence {
		t.Error("expected def propagation avoidance to default true")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "text")
	}
	if !cfg.Analysis.Recursive {
		t.Error("expected recursive analysis to default true")
	}
	if len(cfg.Analysis.IncludePatterns) == 0 {
		t.Error("expected a non-empty default include pattern set")
	}
}

func TestLoadConfigFallsBackToDefaultsWhenNoFileExists(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Output.Format != DefaultConfig().Output.Format {
		t.Error("expected fallback config to match DefaultConfig")
	}
}

func TestLoadConfigReadsExplicitYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jpdg.yaml")
	contents := []byte("pdg:\n  build_execution_dependence: false\noutput:\n  format: json\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.PDG.BuildExecutionDependence {
		t.Error("expected build_execution_dependence overridden to false")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
	}
	if !cfg.PDG.BuildControlDependence {
		t.Error("expected build_control_dependence to keep its default (true)")
	}
}

func TestValidateRejectsUnknownOutputFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "csv"
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to reject an unsupported output format")
	}
}

func TestSaveConfigRoundTripsThroughTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jpdg.toml")

	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want %q", loaded.Output.Format, "json")
	}
	if loaded.PDG.BuildControlDependence != cfg.PDG.BuildControlDependence {
		t.Error("expected PDG settings to round-trip through SaveConfig/LoadConfig")
	}
}

func TestToAnalyzeRequestCarriesPDGAndAnalysisSettings(t *testing.T) {
	cfg := DefaultConfig()
	req := cfg.ToAnalyzeRequest([]string{"Foo.java"})

	if len(req.Paths) != 1 || req.Paths[0] != "Foo.java" {
		t.Errorf("Paths = %v, want [Foo.java]", req.Paths)
	}
	if req.BuildControlDependence != cfg.PDG.BuildControlDependence {
		t.Error("expected BuildControlDependence to carry over from PDGConfig")
	}
	if req.OutputFormat != "text" {
		t.Errorf("OutputFormat = %q, want %q", req.OutputFormat, "text")
	}
	if err := req.Validate(); err != nil {
		t.Errorf("expected a config-derived request to validate, got %v", err)
	}
}
