package main

import (
	"testing"

	"github.com/go-pdg/jpdg/internal/version"
)

func TestVersion(t *testing.T) {
	if version.Short() == "" {
		t.Error("version should not be empty")
	}
	if version.Short() != "dev" && version.Short() != "unknown" {
		t.Logf("version is set to: %s", version.Short())
	}
}

func TestVersionCommandShort(t *testing.T) {
	cmd := NewVersionCmd()
	cmd.SetArgs([]string{"--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version --short failed: %v", err)
	}
}
