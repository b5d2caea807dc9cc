package service

import (
	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/config"
)

// AnalyzeConfigMerger merges a CLI-derived AnalyzeRequest with a config-file
// AnalyzeRequest, letting config-file values stand except where the CLI
// flag tracker says the user explicitly passed the flag.
type AnalyzeConfigMerger struct {
	flagTracker *config.FlagTracker
}

// NewAnalyzeConfigMerger creates a merger that consults explicitFlags (as
// collected by cobra's Flags().Visit) to decide which override fields win.
func NewAnalyzeConfigMerger(explicitFlags map[string]bool) *AnalyzeConfigMerger {
	return &AnalyzeConfigMerger{flagTracker: config.NewFlagTrackerWithFlags(explicitFlags)}
}

// Merge combines base (from the config file) with override (from CLI flags
// and arguments) into a new AnalyzeRequest.
func (m *AnalyzeConfigMerger) Merge(base, override *domain.AnalyzeRequest) *domain.AnalyzeRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	// Paths always come from command arguments.
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	merged.Recursive = m.flagTracker.MergeBool(merged.Recursive, override.Recursive, "recursive")
	merged.IncludePatterns = m.flagTracker.MergeStringSlice(merged.IncludePatterns, override.IncludePatterns, "include")
	merged.ExcludePatterns = m.flagTracker.MergeStringSlice(merged.ExcludePatterns, override.ExcludePatterns, "exclude")

	merged.BuildControlDependence = m.flagTracker.MergeBool(merged.BuildControlDependence, override.BuildControlDependence, "control-dependence")
	merged.BuildDataDependence = m.flagTracker.MergeBool(merged.BuildDataDependence, override.BuildDataDependence, "data-dependence")
	merged.BuildExecutionDependence = m.flagTracker.MergeBool(merged.BuildExecutionDependence, override.BuildExecutionDependence, "execution-dependence")
	merged.ControlDependenceFromEnterToAllNodes = m.flagTracker.MergeBool(merged.ControlDependenceFromEnterToAllNodes, override.ControlDependenceFromEnterToAllNodes, "control-dependence-from-enter-to-all-nodes")
	merged.ControlDependenceFromEnterToParameterNodes = m.flagTracker.MergeBool(merged.ControlDependenceFromEnterToParameterNodes, override.ControlDependenceFromEnterToParameterNodes, "control-dependence-from-enter-to-parameter-nodes")
	merged.AvoidDefPropagationWhenBuildingDataDependence = m.flagTracker.MergeBool(merged.AvoidDefPropagationWhenBuildingDataDependence, override.AvoidDefPropagationWhenBuildingDataDependence, "avoid-def-propagation")

	if m.flagTracker.WasSet("format") {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	merged.NoProgress = m.flagTracker.MergeBool(merged.NoProgress, override.NoProgress, "no-progress")

	return &merged
}
