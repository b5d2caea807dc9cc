package service

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"

    "github.com/go-pdg/jpdg/domain"
)

// FileOutputWriter writes reports to files or provided writers.
type FileOutputWriter struct {
    status io.Writer // where to print status messages (typically stderr)
}

// NewFileOutputWriter creates a new FileOutputWriter.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
    if status == nil {
        status = os.Stderr
    }
    return &FileOutputWriter{status: status}
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
    var out io.Writer

    // If outputPath is provided, write to file; otherwise use writer.
    if outputPath != "" {
        file, err := os.Create(outputPath)
        if err != nil {
            return domain.NewOutputError(fmt.Sprintf("failed to create output file: %s", outputPath), err)
        }
        defer file.Close()
        out = file
    } else {
        out = writer
    }

    if err := writeFunc(out); err != nil {
        return domain.NewOutputError("failed to write output", err)
    }

    // Only emit status when writing to file
    if outputPath != "" {
        absPath, err := filepath.Abs(outputPath)
        if err != nil {
            absPath = outputPath
        }

        _ = noOpen
        formatName := strings.ToUpper(string(format))
        fmt.Fprintf(w.status, "%s report generated: %s\n", formatName, absPath)
    }

    return nil
}

