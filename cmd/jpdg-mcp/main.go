package main

import (
	"fmt"
	"log"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-pdg/jpdg/internal/config"
	"github.com/go-pdg/jpdg/mcp"
)

const (
	serverName    = "jpdg"
	serverVersion = "1.0.0"
)

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	deps := mcp.NewDependencies(cfg, configPath)
	handlers := mcp.NewHandlerSet(deps)
	mcp.RegisterTools(server, handlers)

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - analyze_java: extract PE/CFG/PDG graphs from Java source")
	log.Println("  - render_dot: render a file's CFGs and PDGs as Graphviz DOT")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
