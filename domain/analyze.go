package domain

import (
	"time"
)

// AnalyzeRequest describes one extraction run: which source files to
// visit and which of the PDG's optional edge layers to build.
type AnalyzeRequest struct {
	// Paths are the input file/directory arguments; directories are
	// expanded by the file reader into individual source files.
	Paths []string `json:"paths" yaml:"paths"`

	Recursive       bool     `json:"recursive" yaml:"recursive"`
	IncludePatterns []string `json:"include_patterns,omitempty" yaml:"include_patterns,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty" yaml:"exclude_patterns,omitempty"`

	// BuildControlDependence/BuildDataDependence/BuildExecutionDependence
	// and the remaining PDG configuration booleans mirror
	// internal/pdg.Config one-for-one; the use case translates this
	// struct into a pdg.Config before building.
	BuildControlDependence                        bool `json:"build_control_dependence" yaml:"build_control_dependence"`
	BuildDataDependence                           bool `json:"build_data_dependence" yaml:"build_data_dependence"`
	BuildExecutionDependence                      bool `json:"build_execution_dependence" yaml:"build_execution_dependence"`
	ControlDependenceFromEnterToAllNodes          bool `json:"control_dependence_from_enter_to_all_nodes" yaml:"control_dependence_from_enter_to_all_nodes"`
	ControlDependenceFromEnterToParameterNodes    bool `json:"control_dependence_from_enter_to_parameter_nodes" yaml:"control_dependence_from_enter_to_parameter_nodes"`
	AvoidDefPropagationWhenBuildingDataDependence bool `json:"avoid_def_propagation_when_building_data_dependence" yaml:"avoid_def_propagation_when_building_data_dependence"`

	OutputFormat OutputFormat `json:"output_format" yaml:"output_format"`
	OutputPath   string       `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	NoProgress   bool         `json:"no_progress,omitempty" yaml:"no_progress,omitempty"`
}

// Validate checks the request for obviously invalid values before the use
// case starts resolving files.
func (r *AnalyzeRequest) Validate() error {
	if len(r.Paths) == 0 {
		return NewValidationError("at least one path is required")
	}
	switch r.OutputFormat {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatDOT, "":
	default:
		return NewUnsupportedFormatError(string(r.OutputFormat))
	}
	return nil
}

// MethodGraphSummary reports the shape of one method's CFG/PDG, without
// carrying the graphs themselves (those are available from AnalyzeUseCase
// for reporter consumption; the summary is what gets serialized).
type MethodGraphSummary struct {
	Name string `json:"name" yaml:"name"`

	Statements int `json:"statements" yaml:"statements"`

	CFGNodes       int `json:"cfg_nodes" yaml:"cfg_nodes"`
	CFGEdges       int `json:"cfg_edges" yaml:"cfg_edges"`
	UnreachableCFG int `json:"unreachable_cfg_nodes" yaml:"unreachable_cfg_nodes"`

	PDGNodes          int `json:"pdg_nodes" yaml:"pdg_nodes"`
	ControlEdges      int `json:"control_dependence_edges" yaml:"control_dependence_edges"`
	DataEdges         int `json:"data_dependence_edges" yaml:"data_dependence_edges"`
	ExecutionEdges    int `json:"execution_dependence_edges" yaml:"execution_dependence_edges"`
}

// ClassResult reports the methods extracted from one class declaration.
type ClassResult struct {
	Name    string                `json:"name" yaml:"name"`
	Methods []MethodGraphSummary  `json:"methods" yaml:"methods"`
}

// FileResult reports the outcome of extracting PE/CFG/PDG graphs from one
// source file. Error is set (and Classes left empty) when the file failed
// to parse or build; a single bad file never aborts the batch.
type FileResult struct {
	FilePath string        `json:"file_path" yaml:"file_path"`
	Classes  []ClassResult `json:"classes,omitempty" yaml:"classes,omitempty"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// AnalyzeResponse is the result of one extraction run over the files
// resolved from an AnalyzeRequest.
type AnalyzeResponse struct {
	RunID       string        `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Duration    time.Duration `json:"duration_ms" yaml:"duration_ms"`
	Version     string        `json:"version" yaml:"version"`

	Files   []FileResult `json:"files" yaml:"files"`
	Summary Summary      `json:"summary" yaml:"summary"`
}

// Summary aggregates FileResult counts across a run.
type Summary struct {
	TotalFiles  int `json:"total_files" yaml:"total_files"`
	FilesOK     int `json:"files_ok" yaml:"files_ok"`
	FilesFailed int `json:"files_failed" yaml:"files_failed"`

	TotalClasses int `json:"total_classes" yaml:"total_classes"`
	TotalMethods int `json:"total_methods" yaml:"total_methods"`

	TotalCFGNodes int `json:"total_cfg_nodes" yaml:"total_cfg_nodes"`
	TotalPDGEdges int `json:"total_pdg_edges" yaml:"total_pdg_edges"`
}

// HasFailures reports whether any file in the run failed to parse or build.
func (s *Summary) HasFailures() bool {
	return s.FilesFailed > 0
}
