package mcp

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// AddRequest represents the arguments for site_add.
type AddRequest struct {
	Location        string  `json:"location,omitempty"`
	Title           string  `json:"title,omitempty"`
	CustomTitle     *string `json:"custom_title,omitempty"`
	Tag             string  `json:"tag,omitempty"`
	FolderID        int     `json:"folder_id,omitempty"`
	ParentFolderID  *int    `json:"parent_folder_id,omitempty"`
	PartitionNumber *int    `json:"partition_number,omitempty"`
	Favicon         string  `json:"favicon,omitempty"`
}

// RemoveRequest represents the arguments for site_remove.
type RemoveRequest struct {
	Location        string `json:"location,omitempty"`
	FolderID        int    `json:"folder_id,omitempty"`
	PartitionNumber *int   `json:"partition_number,omitempty"`
	Tag             string `json:"tag,omitempty"`
}

// MoveRequest represents the arguments for site_move.
type MoveRequest struct {
	SourceLocation      string `json:"source_location,omitempty"`
	SourceFolderID      int    `json:"source_folder_id,omitempty"`
	DestinationLocation string `json:"destination_location,omitempty"`
	DestinationFolderID int    `json:"destination_folder_id,omitempty"`
	Prepend             bool   `json:"prepend,omitempty"`
	DestinationIsParent bool   `json:"destination_is_parent,omitempty"`
	DisallowReparent    bool   `json:"disallow_reparent,omitempty"`
}

// ListRequest represents the arguments for site_list.
type ListRequest struct {
	Filter   string `json:"filter,omitempty"`
	FolderID int    `json:"folder_id,omitempty"`
}

// FoldersRequest represents the arguments for site_folders.
type FoldersRequest struct {
	ExcludeFolderID int `json:"exclude_folder_id,omitempty"`
}

// Handler implementations

// HandleAdd handles the site_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	siteInput := ops.SiteInput{
		Location:        input.Location,
		Title:           input.Title,
		CustomTitle:     input.CustomTitle,
		FolderID:        input.FolderID,
		ParentFolderID:  input.ParentFolderID,
		PartitionNumber: input.PartitionNumber,
		Favicon:         input.Favicon,
	}
	if input.Tag != "" {
		siteInput.Tags = []string{input.Tag}
	}

	result, err := ops.AddSite(h.db, h.cfg, ops.AddSiteInput{
		Site: siteInput,
		Tag:  input.Tag,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRemove handles the site_remove tool call.
func (h *Handlers) HandleRemove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RemoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	siteInput := ops.SiteInput{
		Location:        input.Location,
		FolderID:        input.FolderID,
		PartitionNumber: input.PartitionNumber,
	}
	if input.FolderID != 0 {
		siteInput.Tags = []string{"bookmark-folder"}
	}

	result, err := ops.RemoveSite(h.db, ops.RemoveSiteInput{
		Site: siteInput,
		Tag:  input.Tag,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleMove handles the site_move tool call.
func (h *Handlers) HandleMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.MoveSite(h.db, ops.MoveSiteInput{
		Source:              endpointInput(input.SourceLocation, input.SourceFolderID),
		Destination:         endpointInput(input.DestinationLocation, input.DestinationFolderID),
		Prepend:             input.Prepend,
		DestinationIsParent: input.DestinationIsParent,
		DisallowReparent:    input.DisallowReparent,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleList handles the site_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ListSites(h.db, ops.ListSitesInput{
		Filter:   input.Filter,
		FolderID: input.FolderID,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleFolders handles the site_folders tool call.
func (h *Handlers) HandleFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FoldersRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.FolderTree(h.db, ops.FolderTreeInput{
		ExcludeFolderID: input.ExcludeFolderID,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleRecents handles the site_recents tool call.
func (h *Handlers) HandleRecents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Recents(h.db, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleClearHistory handles the site_clear_history tool call.
func (h *Handlers) HandleClearHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ClearHistory(h.db)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// endpointInput builds the SiteInput addressing one end of a move.
func endpointInput(location string, folderID int) ops.SiteInput {
	in := ops.SiteInput{Location: location, FolderID: folderID}
	if folderID != 0 {
		in.Tags = []string{"bookmark-folder"}
	}
	return in
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.SatchelError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
