package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const analyzeTestSource = `class Greeter {
    String greet(String name) {
        if (name == null) {
            return "hello, stranger";
        }
        return "hello, " + name;
    }
}
`

func writeAnalyzeTestFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Greeter.java")
	if err := os.WriteFile(path, []byte(analyzeTestSource), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}
	return path
}

func TestAnalyzeCommand_TextOutput(t *testing.T) {
	path := writeAnalyzeTestFile(t)

	cmd := NewAnalyzeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-progress", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Greeter.java") {
		t.Fatalf("expected output to mention the analyzed file, got: %s", text)
	}
	if !strings.Contains(text, "class Greeter") {
		t.Fatalf("expected output to mention the class, got: %s", text)
	}
}

func TestAnalyzeCommand_JSONOutput(t *testing.T) {
	path := writeAnalyzeTestFile(t)

	cmd := NewAnalyzeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json", "--no-progress", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if !strings.Contains(out.String(), `"run_id"`) {
		t.Fatalf("expected JSON output to contain run_id, got: %s", out.String())
	}
}

func TestAnalyzeCommand_DotOutput(t *testing.T) {
	path := writeAnalyzeTestFile(t)

	cmd := NewAnalyzeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "dot", "--no-progress", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if !strings.Contains(out.String(), "digraph CFG") {
		t.Fatalf("expected dot output to contain a CFG digraph, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "digraph PDG") {
		t.Fatalf("expected dot output to contain a PDG digraph, got: %s", out.String())
	}
}

func TestAnalyzeCommand_MissingPath(t *testing.T) {
	cmd := NewAnalyzeCmd()
	cmd.SetArgs([]string{"--no-progress", "/does/not/exist.java"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a nonexistent path")
	}
}
