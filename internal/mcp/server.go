package mcp

import (
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pcadley/satchel/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"site_add": {
		def:     siteAddToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd },
	},
	"site_remove": {
		def:     siteRemoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRemove },
	},
	"site_move": {
		def:     siteMoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMove },
	},
	"site_list": {
		def:     siteListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"site_folders": {
		def:     siteFoldersToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFolders },
	},
	"site_recents": {
		def:     siteRecentsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRecents },
	},
	"site_clear_history": {
		def:     siteClearHistoryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClearHistory },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns the names in the list that do not match any
// registered tool.
func ValidateDisabledTools(names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Satchel tools registered. Tools
// listed in cfg.DisabledTools are excluded from registration.
func NewServer(db *sql.DB, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"satchel",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, cfg *config.Config, version string) error {
	s := NewServer(db, cfg, version)
	return server.ServeStdio(s)
}
