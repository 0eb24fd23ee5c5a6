package main

import (
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/fjl/gio-scicalc/internal/calc"
)

const (
	serverName    = "scicalc"
	serverVersion = "0.1.0"
)

// calcServer exposes one calculator session as MCP tools.
type calcServer struct {
	mcpServer *server.MCPServer
	session   *session
	config    *config
}

func newCalcServer(cfg *config) *calcServer {
	s := &calcServer{
		mcpServer: server.NewMCPServer(serverName, serverVersion, server.WithToolCapabilities(false)),
		session:   newSession(calc.New(calc.WithAngleMode(cfg.angle))),
		config:    cfg,
	}
	s.registerTools()
	return s
}

func (s *calcServer) registerTools() {
	press := &PressTool{session: s.session, verbose: s.config.verbose}
	s.mcpServer.AddTool(press.GetTool(), press.Handle)

	display := &DisplayTool{session: s.session}
	s.mcpServer.AddTool(display.GetTool(), display.Handle)

	history := &HistoryTool{session: s.session}
	s.mcpServer.AddTool(history.GetTool(), history.Handle)

	st := &StateTool{session: s.session}
	s.mcpServer.AddTool(st.GetTool(), st.Handle)

	clearHistory := &ClearHistoryTool{session: s.session}
	s.mcpServer.AddTool(clearHistory.GetTool(), clearHistory.Handle)
}

// serve runs the server on stdin/stdout until the client disconnects.
func (s *calcServer) serve() error {
	log.Printf("Starting calculator MCP server (angle mode %v)", s.config.angle)
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}
