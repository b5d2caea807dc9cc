package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/go-pdg/jpdg/domain"
	"github.com/go-pdg/jpdg/internal/pdg"
	"github.com/go-pdg/jpdg/internal/reporter"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleAnalyzeJava handles the analyze_java tool.
func (h *HandlerSet) HandleAnalyzeJava(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	cfg := h.deps.Config()
	req := cfg.ToAnalyzeRequest([]string{path})
	req.OutputFormat = domain.OutputFormatJSON

	if rec, ok := args["recursive"].(bool); ok {
		req.Recursive = rec
	}
	if b, ok := args["build_data_dependence"].(bool); ok {
		req.BuildDataDependence = b
	}
	if b, ok := args["build_control_dependence"].(bool); ok {
		req.BuildControlDependence = b
	}
	if b, ok := args["build_execution_dependence"].(bool); ok {
		req.BuildExecutionDependence = b
	}

	useCase := h.deps.BuildAnalyzeUseCase()
	result, err := useCase.Execute(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	outputMode := "summary"
	if om, ok := args["output_mode"].(string); ok {
		outputMode = om
	}

	var responseData interface{}
	switch outputMode {
	case "full":
		responseData = result
	default: // "summary"
		responseData = map[string]interface{}{
			"run_id": result.RunID,
			"summary": map[string]interface{}{
				"total_files":     result.Summary.TotalFiles,
				"files_ok":        result.Summary.FilesOK,
				"files_failed":    result.Summary.FilesFailed,
				"total_classes":   result.Summary.TotalClasses,
				"total_methods":   result.Summary.TotalMethods,
				"total_cfg_nodes": result.Summary.TotalCFGNodes,
				"total_pdg_edges": result.Summary.TotalPDGEdges,
			},
			"failures": failureMessages(result.Files),
		}
	}

	jsonData, err := json.Marshal(responseData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleRenderDot handles the render_dot tool.
func (h *HandlerSet) HandleRenderDot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	which := "both"
	if w, ok := args["graph"].(string); ok {
		which = w
	}

	cfg := h.deps.Config()
	pdgConfig := pdg.Config{
		BuildControlDependence:                        cfg.PDG.BuildControlDependence,
		BuildDataDependence:                           cfg.PDG.BuildDataDependence,
		BuildExecutionDependence:                       cfg.PDG.BuildExecutionDependence,
		ControlDependenceFromEnterToAllNodes:          cfg.PDG.ControlDependenceFromEnterToAllNodes,
		ControlDependenceFromEnterToParameterNodes:    cfg.PDG.ControlDependenceFromEnterToParameterNodes,
		AvoidDefPropagationWhenBuildingDataDependence: cfg.PDG.AvoidDefPropagationWhenBuildingDataDependence,
	}

	useCase := h.deps.BuildAnalyzeUseCase()
	classes, err := useCase.BuildFileGraphs(ctx, path, pdgConfig)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build graphs: %v", err)), nil
	}

	dot := reporter.NewDotReporter()
	var buf strings.Builder

	if which == "cfg" || which == "both" {
		var clusters []reporter.CFGCluster
		for _, class := range classes {
			for _, m := range class.Methods {
				clusters = append(clusters, reporter.CFGCluster{Label: class.Name + "." + m.Name, Graph: m.CFG})
			}
		}
		if err := dot.WriteCFGs(&buf, clusters); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render CFGs: %v", err)), nil
		}
	}
	if which == "pdg" || which == "both" {
		var clusters []reporter.PDGCluster
		for _, class := range classes {
			for _, m := range class.Methods {
				clusters = append(clusters, reporter.PDGCluster{Label: class.Name + "." + m.Name, Graph: m.PDG})
			}
		}
		if err := dot.WritePDGs(&buf, clusters); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render PDGs: %v", err)), nil
		}
	}

	return mcp.NewToolResultText(buf.String()), nil
}

func failureMessages(files []domain.FileResult) []string {
	var msgs []string
	for _, f := range files {
		if f.Error != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", f.FilePath, f.Error))
		}
	}
	return msgs
}
