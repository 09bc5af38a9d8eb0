package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/termdialog/internal/config"
)

const (
	ServerName    = "termdialog"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing the dialog core headlessly.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	logger    *slog.Logger
}

// NewServer creates a new MCP server. A nil config uses the defaults and a
// nil logger discards output.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		config: cfg,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server started", "name", ServerName, "version", ServerVersion)
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "dialog_layout",
		Description: "Compute the rect a floating dialog occupies for a viewport and display state. Minimized docks a title strip at the bottom-right; maximized fills the viewport; normal uses the stored position (centered when omitted).",
	}, s.handleDialogLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "dialog_simulate",
		Description: "Replay an ordered list of actions (open, close, minimize, maximize, restore, press, move, release, resize, unmount) against a fresh dialog and report its final state. press starts a title-bar drag at (x, y); move and release are pointer events delivered to the document while a drag is active; release snaps the dialog back inside the viewport.",
	}, s.handleDialogSimulate)
}
