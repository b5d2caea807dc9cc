package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-pdg/jpdg/internal/version"
	"github.com/go-pdg/jpdg/service"
)

var rootCmd = &cobra.Command{
	Use:   "jpdg",
	Short: "A program-dependence-graph extractor for Java",
	Long: `jpdg parses Java source into a program-element tree, builds each
method's control-flow graph, and overlays a program-dependence graph
(control, data, and execution-order edges).

Features:
  • Program-element (PE) tree construction from Java source
  • Control-flow graph (CFG) construction (graphs are reported untrimmed)
  • Program-dependence graph (PDG) construction from def-use analysis
  • Graphviz DOT rendering of CFGs and PDGs`,
	Version: version.Short(),
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError categorizes a top-level command failure and prints a short
// recovery hint alongside it, rather than the bare error cobra already
// printed to stderr.
func reportError(err error) {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)
	if categorized == nil {
		return
	}

	suggestions := categorizer.GetRecoverySuggestions(categorized.Category)
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s. Try:\n", categorized.Category)
	for _, s := range suggestions[:min(2, len(suggestions))] {
		fmt.Fprintf(os.Stderr, "  - %s\n", s)
	}
}
