package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-pdg/jpdg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testAnalyzeResponse() *domain.AnalyzeResponse {
	return &domain.AnalyzeResponse{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Duration:    250 * time.Millisecond,
		Version:     "test",
		Files: []domain.FileResult{
			{
				FilePath: "Calculator.java",
				Classes: []domain.ClassResult{
					{
						Name: "Calculator",
						Methods: []domain.MethodGraphSummary{
							{Name: "add", Statements: 4, CFGNodes: 6, CFGEdges: 7, UnreachableCFG: 0, PDGNodes: 6, ControlEdges: 2, DataEdges: 3, ExecutionEdges: 5},
						},
					},
				},
			},
			{FilePath: "Broken.java", Error: "parse error: unexpected token"},
		},
		Summary: domain.Summary{
			TotalFiles: 2, FilesOK: 1, FilesFailed: 1,
			TotalClasses: 1, TotalMethods: 1,
			TotalCFGNodes: 6, TotalPDGEdges: 10,
		},
	}
}

func TestAnalyzeFormatter_Text(t *testing.T) {
	f := NewAnalyzeFormatter()
	var buf bytes.Buffer
	require.NoError(t, f.Write(testAnalyzeResponse(), domain.OutputFormatText, &buf))

	out := buf.String()
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "Calculator.java")
	assert.Contains(t, out, "class Calculator")
	assert.Contains(t, out, "add: 4 statements")
	assert.Contains(t, out, "Broken.java: ERROR: parse error: unexpected token")
}

func TestAnalyzeFormatter_JSON(t *testing.T) {
	f := NewAnalyzeFormatter()
	var buf bytes.Buffer
	require.NoError(t, f.Write(testAnalyzeResponse(), domain.OutputFormatJSON, &buf))

	var decoded domain.AnalyzeResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 1, decoded.Summary.FilesFailed)
	assert.Len(t, decoded.Files, 2)
}

func TestAnalyzeFormatter_YAML(t *testing.T) {
	f := NewAnalyzeFormatter()
	var buf bytes.Buffer
	require.NoError(t, f.Write(testAnalyzeResponse(), domain.OutputFormatYAML, &buf))

	var decoded domain.AnalyzeResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 2, decoded.Summary.TotalFiles)
}

func TestAnalyzeFormatter_Format(t *testing.T) {
	f := NewAnalyzeFormatter()

	text, err := f.Format(testAnalyzeResponse(), domain.OutputFormatText)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "jpdg analysis report"))

	json, err := f.Format(testAnalyzeResponse(), domain.OutputFormatJSON)
	require.NoError(t, err)
	assert.Contains(t, json, `"run_id"`)
}

func TestAnalyzeFormatter_UnsupportedFormat(t *testing.T) {
	f := NewAnalyzeFormatter()
	_, err := f.Format(testAnalyzeResponse(), domain.OutputFormat("xml"))
	assert.Error(t, err)

	var buf bytes.Buffer
	err = f.Write(testAnalyzeResponse(), domain.OutputFormat("xml"), &buf)
	assert.Error(t, err)
}
