package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats for an AnalyzeResponse.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatDOT  OutputFormat = "dot"
)

// FileReader defines the interface for reading and collecting Java source files.
type FileReader interface {
	// CollectJavaFiles recursively finds all Java files in the given paths.
	CollectJavaFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadFile reads the content of a file.
	ReadFile(path string) ([]byte, error)

	// IsValidJavaFile checks if a file is a valid Java source file.
	IsValidJavaFile(path string) bool

	// FileExists checks if a file exists and is not a directory.
	FileExists(path string) (bool, error)
}

// OutputFormatter defines the interface for formatting an AnalyzeResponse.
type OutputFormatter interface {
	// Format formats the analysis response according to the specified format.
	Format(response *AnalyzeResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer.
	Write(response *AnalyzeResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration.
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path.
	LoadConfig(path string) (*AnalyzeRequest, error)

	// LoadDefaultConfig loads the default configuration.
	LoadDefaultConfig() *AnalyzeRequest
}

// ReportWriter abstracts writing reports to a destination (file or writer)
// and reporting where a written file went.
//
// Implementations live in the service layer.
type ReportWriter interface {
	// Write writes formatted content using the provided writeFunc.
	// - If outputPath is non-empty, implementations should create/truncate the file
	//   at that path and pass the file as the writer to writeFunc.
	// - If outputPath is empty, implementations should pass the provided writer to writeFunc.
	// Implementations may emit user-facing status messages (e.g., file paths).
	// No output format opens a browser; FileOutputWriter ignores noOpen.
	Write(writer io.Writer, outputPath string, format OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error
}

// ProgressReporter prints human-readable progress lines for a batch run.
type ProgressReporter interface {
	// StartProgress announces the start of a run over totalFiles files.
	StartProgress(totalFiles int)

	// UpdateProgress reports that currentFile has been processed.
	UpdateProgress(currentFile string, processed, total int)

	// FinishProgress announces the end of the run.
	FinishProgress()
}

// ParallelExecutor manages parallel execution of tasks
type ParallelExecutor interface {
	// Execute runs tasks in parallel with the given configuration
	Execute(ctx context.Context, tasks []ExecutableTask) error

	// SetMaxConcurrency sets the maximum number of concurrent tasks
	SetMaxConcurrency(max int)

	// SetTimeout sets the timeout for all tasks
	SetTimeout(timeout time.Duration)
}

// ExecutableTask represents a task that can be executed in parallel
type ExecutableTask interface {
	// Name returns the name of the task
	Name() string

	// Execute runs the task and returns the result
	Execute(ctx context.Context) (interface{}, error)

	// IsEnabled returns whether the task should be executed
	IsEnabled() bool
}

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	ErrorCategoryInput      ErrorCategory = "Input Error"
	ErrorCategoryConfig     ErrorCategory = "Configuration Error"
	ErrorCategoryProcessing ErrorCategory = "Processing Error"
	ErrorCategoryOutput     ErrorCategory = "Output Error"
	ErrorCategoryTimeout    ErrorCategory = "Timeout Error"
	ErrorCategoryUnknown    ErrorCategory = "Unknown Error"
)

// CategorizedError represents an error with category information
type CategorizedError struct {
	Category ErrorCategory
	Message  string
	Original error
}

// Error implements the error interface
func (e *CategorizedError) Error() string {
	if e.Original != nil {
		return e.Original.Error()
	}
	return e.Message
}

// ErrorCategorizer categorizes errors for better reporting
type ErrorCategorizer interface {
	// Categorize determines the category of an error
	Categorize(err error) *CategorizedError

	// GetRecoverySuggestions returns recovery suggestions for an error category
	GetRecoverySuggestions(category ErrorCategory) []string
}
