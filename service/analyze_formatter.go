package service

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdg/jpdg/domain"
)

// AnalyzeFormatter formats an AnalyzeResponse for text, JSON, or YAML
// output. DOT output is produced separately (internal/reporter.DotReporter
// needs the live CFG/PDG objects, which the response's summary DTOs discard).
type AnalyzeFormatter struct{}

// NewAnalyzeFormatter creates a new analyze formatter.
func NewAnalyzeFormatter() *AnalyzeFormatter {
	return &AnalyzeFormatter{}
}

// Format renders response as a string in the given format.
func (f *AnalyzeFormatter) Format(response *domain.AnalyzeResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatJSON:
		return EncodeJSON(response)
	case domain.OutputFormatYAML:
		return EncodeYAML(response)
	case domain.OutputFormatText, "":
		var buf stringWriter
		if err := f.writeText(response, &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write formats and writes response to writer.
func (f *AnalyzeFormatter) Write(response *domain.AnalyzeResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText, "":
		return f.writeText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *AnalyzeFormatter) writeText(response *domain.AnalyzeResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "jpdg analysis report\n")
	fmt.Fprintf(writer, "=====================\n\n")
	fmt.Fprintf(writer, "Run ID:    %s\n", response.RunID)
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(writer, "Duration:  %s\n\n", response.Duration)

	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Files:          %d ok, %d failed (of %d)\n", response.Summary.FilesOK, response.Summary.FilesFailed, response.Summary.TotalFiles)
	fmt.Fprintf(writer, "  Classes:        %d\n", response.Summary.TotalClasses)
	fmt.Fprintf(writer, "  Methods:        %d\n", response.Summary.TotalMethods)
	fmt.Fprintf(writer, "  CFG nodes:      %d\n", response.Summary.TotalCFGNodes)
	fmt.Fprintf(writer, "  PDG edges:      %d\n\n", response.Summary.TotalPDGEdges)

	for _, file := range response.Files {
		if file.Error != "" {
			fmt.Fprintf(writer, "%s: ERROR: %s\n\n", file.FilePath, file.Error)
			continue
		}
		fmt.Fprintf(writer, "%s\n", file.FilePath)
		for _, class := range file.Classes {
			fmt.Fprintf(writer, "  class %s\n", class.Name)
			for _, m := range class.Methods {
				fmt.Fprintf(writer, "    %s: %d statements, cfg(%d nodes, %d edges, %d unreachable), pdg(%d nodes, control=%d data=%d execution=%d)\n",
					m.Name, m.Statements, m.CFGNodes, m.CFGEdges, m.UnreachableCFG,
					m.PDGNodes, m.ControlEdges, m.DataEdges, m.ExecutionEdges)
			}
		}
		fmt.Fprintf(writer, "\n")
	}

	return nil
}

type stringWriter struct {
	data []byte
}

func (s *stringWriter) Write(p []byte) (int, error) {
	s.data = append(s.data, p...)
	return len(p), nil
}

func (s *stringWriter) String() string {
	return string(s.data)
}
