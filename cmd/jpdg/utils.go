package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GetExplicitFlags extracts which flags were explicitly set on a cobra command.
func GetExplicitFlags(cmd *cobra.Command) map[string]bool {
	explicitFlags := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().Visit(func(f *pflag.Flag) {
			explicitFlags[f.Name] = true
		})
	}
	return explicitFlags
}

// isInteractiveEnvironment reports whether the environment appears to be an
// interactive TTY session (and not CI), used to decide whether to render
// progress bars.
func isInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if fi, err := os.Stderr.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
