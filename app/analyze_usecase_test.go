package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/service"
)

const sampleJava = `
class Calculator {
    int add(int a, int b) {
        int result = a + b;
        if (result > 100) {
            result = 100;
        } else {
            result = result + 1;
        }
        return result;
    }

    int loopy(int n) {
        int total = 0;
        for (int i = 0; i < n; i++) {
            total += i;
        }
        return total;
    }
}
`

func writeSampleFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Calculator.java")
	require.NoError(t, os.WriteFile(path, []byte(sampleJava), 0644))
	return path
}

func TestAnalyzeUseCase_Execute(t *testing.T) {
	path := writeSampleFile(t)
	reader := service.NewFileReader()
	uc := NewAnalyzeUseCase(reader, nil, "test")

	req := &domain.AnalyzeRequest{
		Paths:                    []string{path},
		BuildControlDependence:   true,
		BuildDataDependence:      true,
		BuildExecutionDependence: true,
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.RunID)
	assert.Equal(t, 1, resp.Summary.TotalFiles)
	assert.Equal(t, 1, resp.Summary.FilesOK)
	assert.Equal(t, 0, resp.Summary.FilesFailed)
	assert.Equal(t, 1, resp.Summary.TotalClasses)
	assert.Equal(t, 2, resp.Summary.TotalMethods)
	assert.Greater(t, resp.Summary.TotalCFGNodes, 0)
	assert.Greater(t, resp.Summary.TotalPDGEdges, 0)

	require.Len(t, resp.Files, 1)
	file := resp.Files[0]
	assert.Empty(t, file.Error)
	require.Len(t, file.Classes, 1)
	assert.Equal(t, "Calculator", file.Classes[0].Name)
	require.Len(t, file.Classes[0].Methods, 2)

	addMethod := file.Classes[0].Methods[0]
	assert.Equal(t, "add", addMethod.Name)
	assert.Greater(t, addMethod.CFGNodes, 0)
	assert.Greater(t, addMethod.PDGNodes, 0)
	assert.Greater(t, addMethod.ControlEdges, 0)
}

func TestAnalyzeUseCase_Execute_MissingFileRecordsFailure(t *testing.T) {
	reader := service.NewFileReader()
	uc := NewAnalyzeUseCase(reader, nil, "test")

	req := &domain.AnalyzeRequest{Paths: []string{filepath.Join(t.TempDir(), "Missing.java")}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.FilesFailed)
	require.Len(t, resp.Files, 1)
	assert.NotEmpty(t, resp.Files[0].Error)
}

func TestAnalyzeUseCase_Execute_ValidatesRequest(t *testing.T) {
	uc := NewAnalyzeUseCase(service.NewFileReader(), nil, "test")
	_, err := uc.Execute(context.Background(), &domain.AnalyzeRequest{})
	assert.Error(t, err)
}
