package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers jpdg's MCP tools with the server.
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	s.AddTool(mcp.NewTool("analyze_java",
		mcp.WithDescription("Extract the program-element tree, control-flow graph, and program-dependence graph for Java source (file or directory)"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a Java file or directory to analyze")),
		mcp.WithBoolean("recursive",
			mcp.Description("Recurse into subdirectories when path is a directory (default: true)")),
		mcp.WithBoolean("build_data_dependence",
			mcp.Description("Build the PDG's data-dependence edge layer (default: true)")),
		mcp.WithBoolean("build_control_dependence",
			mcp.Description("Build the PDG's control-dependence edge layer (default: true)")),
		mcp.WithBoolean("build_execution_dependence",
			mcp.Description("Build the PDG's execution-order edge layer (default: true)")),
		mcp.WithString("output_mode",
			mcp.Description("summary (default, per-method counts) or full (every FileResult)")),
	), h.HandleAnalyzeJava)

	s.AddTool(mcp.NewTool("render_dot",
		mcp.WithDescription("Render a single Java file's CFGs and PDGs as Graphviz DOT"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the Java file to render")),
		mcp.WithString("graph",
			mcp.Description("Which graph to render: cfg, pdg, or both (default: both)")),
	), h.HandleRenderDot)
}
