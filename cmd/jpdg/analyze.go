package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-pdg/jpdg/app"
	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/config"
	"github.com/go-pdg/jpdg/internal/pdg"
	"github.com/go-pdg/jpdg/internal/reporter"
	"github.com/go-pdg/jpdg/internal/version"
	"github.com/go-pdg/jpdg/service"
)

// AnalyzeCommand extracts the PE/CFG/PDG graphs for one or more Java files.
type AnalyzeCommand struct {
	format     string
	outputPath string
	configFile string
	verbose    bool

	recursive       bool
	includePatterns []string
	excludePatterns []string

	buildControlDependence                        bool
	buildDataDependence                           bool
	buildExecutionDependence                      bool
	controlDependenceFromEnterToAllNodes          bool
	controlDependenceFromEnterToParameterNodes    bool
	avoidDefPropagationWhenBuildingDataDependence bool

	noProgress bool
	dotGraph   string // "cfg", "pdg", or "both" -- only consulted when format == dot

	jsonOutput bool
	yamlOutput bool
	dotOutput  bool
}

// NewAnalyzeCommand creates a new analyze command with jpdg's defaults.
func NewAnalyzeCommand() *AnalyzeCommand {
	defaults := config.DefaultConfig()
	return &AnalyzeCommand{
		format: defaults.Output.Format,
		recursive: defaults.Analysis.Recursive,
		includePatterns: defaults.Analysis.IncludePatterns,
		excludePatterns: defaults.Analysis.ExcludePatterns,
		buildControlDependence: defaults.PDG.BuildControlDependence,
		buildDataDependence: defaults.PDG.BuildDataDependence,
		buildExecutionDependence: defaults.PDG.BuildExecutionDependence,
		controlDependenceFromEnterToAllNodes: defaults.PDG.ControlDependenceFromEnterToAllNodes,
		controlDependenceFromEnterToParameterNodes: defaults.PDG.ControlDependenceFromEnterToParameterNodes,
		avoidDefPropagationWhenBuildingDataDependence: defaults.PDG.AvoidDefPropagationWhenBuildingDataDependence,
		dotGraph: "both",
	}
}

// CreateCobraCommand creates the cobra command for the analyze subcommand.
func (c *AnalyzeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files or directories...]",
		Short: "Extract PE/CFG/PDG graphs from Java source",
		Long: `Parse Java source into a program-element tree, build each method's
control-flow graph, and overlay a program-dependence graph.

Examples:
  # Analyze a single file, text summary to stdout
  jpdg analyze Calculator.java

  # Analyze a directory recursively, JSON to stdout
  jpdg analyze --format json src/

  # Render a single file's CFGs and PDGs as Graphviz DOT
  jpdg analyze --format dot Calculator.java > out.dot

  # Only the data-dependence edge layer
  jpdg analyze --execution-dependence=false --control-dependence=false src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runAnalyze,
	}

	cmd.Flags().StringVar(&c.format, "format", c.format, "Output format: text, json, yaml, or dot")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path")

	cmd.Flags().BoolVar(&c.recursive, "recursive", c.recursive, "Recurse into subdirectories")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", c.includePatterns, "Include file glob patterns")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", c.excludePatterns, "Exclude file glob patterns")

	cmd.Flags().BoolVar(&c.buildControlDependence, "control-dependence", c.buildControlDependence, "Build the control-dependence edge layer")
	cmd.Flags().BoolVar(&c.buildDataDependence, "data-dependence", c.buildDataDependence, "Build the data-dependence edge layer")
	cmd.Flags().BoolVar(&c.buildExecutionDependence, "execution-dependence", c.buildExecutionDependence, "Build the execution-order edge layer")
	cmd.Flags().BoolVar(&c.controlDependenceFromEnterToAllNodes, "control-dependence-from-enter-to-all-nodes", c.controlDependenceFromEnterToAllNodes, "Add a control-dependence edge from Enter to every node")
	cmd.Flags().BoolVar(&c.controlDependenceFromEnterToParameterNodes, "control-dependence-from-enter-to-parameter-nodes", c.controlDependenceFromEnterToParameterNodes, "Add a control-dependence edge from Enter to parameter nodes")
	cmd.Flags().BoolVar(&c.avoidDefPropagationWhenBuildingDataDependence, "avoid-def-propagation", c.avoidDefPropagationWhenBuildingDataDependence, "Stop propagating a definition past a node that redefines the variable when building data dependence")

	cmd.Flags().BoolVar(&c.noProgress, "no-progress", false, "Disable progress reporting")
	cmd.Flags().StringVar(&c.dotGraph, "dot-graph", c.dotGraph, "Which graph(s) to render for --format dot: cfg, pdg, or both")

	cmd.Flags().BoolVar(&c.jsonOutput, "json", false, "Shorthand for --format json")
	cmd.Flags().BoolVar(&c.yamlOutput, "yaml", false, "Shorthand for --format yaml")
	cmd.Flags().BoolVar(&c.dotOutput, "dot", false, "Shorthand for --format dot")

	return cmd
}

func (c *AnalyzeCommand) runAnalyze(cmd *cobra.Command, args []string) error {
	if cmd.Parent() != nil {
		c.verbose, _ = cmd.Parent().Flags().GetBool("verbose")
	}

	cfg, err := config.LoadConfig(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	override := cfg.ToAnalyzeRequest(args)
	override.Recursive = c.recursive
	override.IncludePatterns = c.includePatterns
	override.ExcludePatterns = c.excludePatterns
	override.BuildControlDependence = c.buildControlDependence
	override.BuildDataDependence = c.buildDataDependence
	override.BuildExecutionDependence = c.buildExecutionDependence
	override.ControlDependenceFromEnterToAllNodes = c.controlDependenceFromEnterToAllNodes
	override.ControlDependenceFromEnterToParameterNodes = c.controlDependenceFromEnterToParameterNodes
	override.AvoidDefPropagationWhenBuildingDataDependence = c.avoidDefPropagationWhenBuildingDataDependence
	override.OutputFormat = domain.OutputFormat(strings.ToLower(c.format))
	if c.jsonOutput || c.yamlOutput || c.dotOutput {
		resolved, _, err := service.NewOutputFormatResolver().Determine(c.jsonOutput, c.yamlOutput, c.dotOutput)
		if err != nil {
			return err
		}
		override.OutputFormat = resolved
	}
	override.OutputPath = c.outputPath
	override.NoProgress = c.noProgress

	merger := service.NewAnalyzeConfigMerger(GetExplicitFlags(cmd))
	req := merger.Merge(cfg.ToAnalyzeRequest(args), override)

	if err := req.Validate(); err != nil {
		return err
	}

	writer := service.NewFileOutputWriter(cmd.ErrOrStderr())
	return writer.Write(cmd.OutOrStdout(), req.OutputPath, req.OutputFormat, true, func(out io.Writer) error {
		if req.OutputFormat == domain.OutputFormatDOT {
			return c.runDotAnalysis(cmd, req, out)
		}
		return c.runSummaryAnalysis(cmd, req, out)
	})
}

func (c *AnalyzeCommand) runSummaryAnalysis(cmd *cobra.Command, req *domain.AnalyzeRequest, out io.Writer) error {
	fileReader := service.NewFileReader()

	var progress domain.ProgressReporter = service.NewNoOpProgressReporter()
	if !req.NoProgress && isInteractiveEnvironment() {
		progress = service.NewProgressReporter(cmd.ErrOrStderr(), true, c.verbose)
	}

	useCase := app.NewAnalyzeUseCase(fileReader, progress, version.Short())

	resp, err := useCase.Execute(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter := service.NewAnalyzeFormatter()
	if err := formatter.Write(resp, req.OutputFormat, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if resp.Summary.HasFailures() {
		return fmt.Errorf("analysis completed with %d failed file(s) out of %d", resp.Summary.FilesFailed, resp.Summary.TotalFiles)
	}
	return nil
}

func (c *AnalyzeCommand) runDotAnalysis(cmd *cobra.Command, req *domain.AnalyzeRequest, out io.Writer) error {
	fileReader := service.NewFileReader()
	files, err := app.ResolveFilePaths(fileReader, req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns, true)
	if err != nil {
		return err
	}

	pdgConfig := pdg.Config{
		BuildControlDependence:                        req.BuildControlDependence,
		BuildDataDependence:                            req.BuildDataDependence,
		BuildExecutionDependence:                       req.BuildExecutionDependence,
		ControlDependenceFromEnterToAllNodes:           req.ControlDependenceFromEnterToAllNodes,
		ControlDependenceFromEnterToParameterNodes:     req.ControlDependenceFromEnterToParameterNodes,
		AvoidDefPropagationWhenBuildingDataDependence:  req.AvoidDefPropagationWhenBuildingDataDependence,
	}

	useCase := app.NewAnalyzeUseCase(fileReader, nil, version.Short())
	dot := reporter.NewDotReporter()

	var cfgClusters []reporter.CFGCluster
	var pdgClusters []reporter.PDGCluster

	for _, path := range files {
		classes, err := useCase.BuildFileGraphs(cmd.Context(), path, pdgConfig)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
			continue
		}
		for _, class := range classes {
			for _, m := range class.Methods {
				label := fmt.Sprintf("%s.%s", class.Name, m.Name)
				cfgClusters = append(cfgClusters, reporter.CFGCluster{Label: label, Graph: m.CFG})
				pdgClusters = append(pdgClusters, reporter.PDGCluster{Label: label, Graph: m.PDG})
			}
		}
	}

	switch c.dotGraph {
	case "cfg":
		return dot.WriteCFGs(out, cfgClusters)
	case "pdg":
		return dot.WritePDGs(out, pdgClusters)
	default:
		if err := dot.WriteCFGs(out, cfgClusters); err != nil {
			return err
		}
		return dot.WritePDGs(out, pdgClusters)
	}
}

// NewAnalyzeCmd creates and returns the analyze cobra command.
func NewAnalyzeCmd() *cobra.Command {
	return NewAnalyzeCommand().CreateCobraCommand()
}
