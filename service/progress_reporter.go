package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/go-pdg/jpdg/domain"
)

// ProgressReporterImpl implements the ProgressReporter interface
type ProgressReporterImpl struct {
	writer     io.Writer
	totalFiles int
	processed  int
	startTime  time.Time
	enabled    bool
	verbose    bool
}

// NewProgressReporter creates a new progress reporter
func NewProgressReporter(writer io.Writer, enabled, verbose bool) *ProgressReporterImpl {
	if writer == nil {
		writer = os.Stderr // Progress output typically goes to stderr
	}

	return &ProgressReporterImpl{
		writer:  writer,
		enabled: enabled,
		verbose: verbose,
	}
}

// StartProgress starts progress reporting for the given number of files
func (p *ProgressReporterImpl) StartProgress(totalFiles int) {
	if !p.enabled {
		return
	}

	p.totalFiles = totalFiles
	p.processed = 0
	p.startTime = time.Now()

	if p.verbose {
		fmt.Fprintf(p.writer, "🔍 Starting analysis of %d Java files...\n", totalFiles)
	} else if totalFiles > 1 {
		fmt.Fprintf(p.writer, "Analyzing %d files...\n", totalFiles)
	}
}

// UpdateProgress updates the progress with the current file being processed
func (p *ProgressReporterImpl) UpdateProgress(currentFile string, processed, total int) {
	if !p.enabled {
		return
	}

	p.processed = processed

	if p.verbose {
		// Show detailed progress with file names
		fmt.Fprintf(p.writer, "[%d/%d] %s\n", processed+1, total, filepath.Base(currentFile))
	} else if total > 10 {
		// Show simple progress for many files
		if (processed+1)%max(1, total/10) == 0 || processed+1 == total {
			percentage := int((float64(processed+1) / float64(total)) * 100)
			fmt.Fprintf(p.writer, "\rProgress: %d%% (%d/%d)", percentage, processed+1, total)
			if processed+1 == total {
				fmt.Fprintf(p.writer, "\n")
			}
		}
	}
}

// FinishProgress finishes progress reporting
func (p *ProgressReporterImpl) FinishProgress() {
	if !p.enabled {
		return
	}

	elapsed := time.Since(p.startTime)

	if p.verbose {
		rate := float64(p.totalFiles) / elapsed.Seconds()
		fmt.Fprintf(p.writer, "✅ Analysis completed in %v (%.1f files/sec)\n", elapsed.Truncate(time.Millisecond), rate)
	} else if p.totalFiles > 1 {
		fmt.Fprintf(p.writer, "Analysis completed in %v\n", elapsed.Truncate(time.Millisecond))
	}
}

// NoOpProgressReporter is a progress reporter that does nothing
type NoOpProgressReporter struct{}

// NewNoOpProgressReporter creates a no-op progress reporter
func NewNoOpProgressReporter() *NoOpProgressReporter {
	return &NoOpProgressReporter{}
}

func (n *NoOpProgressReporter) StartProgress(totalFiles int)                            {}
func (n *NoOpProgressReporter) UpdateProgress(currentFile string, processed, total int) {}
func (n *NoOpProgressReporter) FinishProgress()                                         {}

// SpinnerProgressReporter shows a simple spinner for single file analysis
type SpinnerProgressReporter struct {
	writer  io.Writer
	enabled bool
	spinner []string
	current int
	done    chan bool
}

// NewSpinnerProgressReporter creates a spinner-based progress reporter
func NewSpinnerProgressReporter(writer io.Writer, enabled bool) *SpinnerProgressReporter {
	if writer == nil {
		writer = os.Stderr
	}

	return &SpinnerProgressReporter{
		writer:  writer,
		enabled: enabled,
		spinner: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		done:    make(chan bool),
	}
}

func (s *SpinnerProgressReporter) StartProgress(totalFiles int) {
	if !s.enabled || totalFiles > 1 {
		return
	}

	fmt.Fprintf(s.writer, "Analyzing... ")
	go s.animate()
}

func (s *SpinnerProgressReporter) UpdateProgress(currentFile string, processed, total int) {
	// Spinner doesn't need updates
}

func (s *SpinnerProgressReporter) FinishProgress() {
	if !s.enabled {
		return
	}

	select {
	case s.done <- true:
		fmt.Fprintf(s.writer, "\r✅ Analysis completed\n")
	default:
		// Channel already closed or no spinner running
	}
}

func (s *SpinnerProgressReporter) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			fmt.Fprintf(s.writer, "\r%s Analyzing...", s.spinner[s.current])
			s.current = (s.current + 1) % len(s.spinner)
		}
	}
}

// ProgressBarReporter renders a real terminal progress bar via
// github.com/schollz/progressbar, for the common many-files, non-verbose case.
type ProgressBarReporter struct {
	writer     io.Writer
	enabled    bool
	totalFiles int
	bar        *progressbar.ProgressBar
}

// NewProgressBarReporter creates a progress bar reporter.
func NewProgressBarReporter(writer io.Writer, enabled bool, barWidth int) *ProgressBarReporter {
	if writer == nil {
		writer = os.Stderr
	}

	return &ProgressBarReporter{writer: writer, enabled: enabled}
}

func (pb *ProgressBarReporter) StartProgress(totalFiles int) {
	if !pb.enabled || totalFiles <= 1 {
		return
	}

	pb.totalFiles = totalFiles
	pb.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Analyzing"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(pb.writer),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(pb.writer) }),
	)
}

func (pb *ProgressBarReporter) UpdateProgress(currentFile string, processed, total int) {
	if !pb.enabled || total <= 1 || pb.bar == nil {
		return
	}
	_ = pb.bar.Set(processed + 1)
}

func (pb *ProgressBarReporter) FinishProgress() {
	if !pb.enabled || pb.totalFiles <= 1 || pb.bar == nil {
		return
	}
	_ = pb.bar.Finish()
}

// Factory function to create appropriate progress reporter based on context
func CreateProgressReporter(writer io.Writer, totalFiles int, verbose bool) domain.ProgressReporter {
	// Don't show progress for tests or when output is redirected to a file
	if writer == nil || !isTerminal(writer) {
		return NewNoOpProgressReporter()
	}

	// Disable progress reporting if totalFiles is 0 (used to disable progress in concurrent mode)
	if totalFiles == 0 {
		return NewNoOpProgressReporter()
	}

	if totalFiles == 1 {
		return NewSpinnerProgressReporter(writer, true)
	} else if verbose {
		return NewProgressReporter(writer, true, true)
	} else {
		return NewProgressBarReporter(writer, true, 40)
	}
}

// isTerminal checks whether w is a terminal, via golang.org/x/term when w is
// an *os.File (the only case a real TTY check is meaningful for).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
