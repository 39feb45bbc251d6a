package mcp

import "github.com/mark3labs/mcp-go/mcp"

var siteAddToolDef = mcp.NewTool("site_add",
	mcp.WithDescription("Add a site record (history entry, bookmark, or bookmark folder) or update the existing one with the same identity."),
	mcp.WithString("location", mcp.Description("Site URL (empty for folders)")),
	mcp.WithString("title", mcp.Description("Page title")),
	mcp.WithString("custom_title", mcp.Description("User-chosen title; overrides the page title")),
	mcp.WithString("tag", mcp.Description("Tag to apply: bookmark, bookmark-folder, or pinned")),
	mcp.WithNumber("folder_id", mcp.Description("Folder id (folders only; assigned automatically when omitted)")),
	mcp.WithNumber("parent_folder_id", mcp.Description("Folder the record lives in; 0 = top level")),
	mcp.WithNumber("partition_number", mcp.Description("Browsing partition; 0 = default")),
	mcp.WithString("favicon", mcp.Description("Favicon URL")),
)

var siteRemoveToolDef = mcp.NewTool("site_remove",
	mcp.WithDescription("Remove a site record. Folders cascade to their descendants. Removing a tag from a tagged record keeps the record; removing with no tag deletes history entries and clears history on bookmarks."),
	mcp.WithString("location", mcp.Description("Site URL (non-folder records)")),
	mcp.WithNumber("folder_id", mcp.Description("Folder id (folder records)")),
	mcp.WithNumber("partition_number", mcp.Description("Browsing partition; 0 = default")),
	mcp.WithString("tag", mcp.Description("Tag to strip: bookmark, bookmark-folder, or pinned")),
)

var siteMoveToolDef = mcp.NewTool("site_move",
	mcp.WithDescription("Move a site record relative to another. Moves that would cycle the folder tree are rejected."),
	mcp.WithString("source_location", mcp.Description("Source URL (non-folder source)")),
	mcp.WithNumber("source_folder_id", mcp.Description("Source folder id (folder source)")),
	mcp.WithString("destination_location", mcp.Description("Destination URL (non-folder destination)")),
	mcp.WithNumber("destination_folder_id", mcp.Description("Destination folder id (folder destination)")),
	mcp.WithBoolean("prepend", mcp.Description("Insert before the destination instead of after")),
	mcp.WithBoolean("destination_is_parent", mcp.Description("Append as the destination folder's last child")),
	mcp.WithBoolean("disallow_reparent", mcp.Description("Keep the source's current parent folder")),
)

var siteListToolDef = mcp.NewTool("site_list",
	mcp.WithDescription("List site records in display order, optionally filtered to bookmarks or history, or narrowed to one folder's children."),
	mcp.WithString("filter", mcp.Description("all (default), bookmarks, or history")),
	mcp.WithNumber("folder_id", mcp.Description("Restrict to this folder's direct children")),
)

var siteFoldersToolDef = mcp.NewTool("site_folders",
	mcp.WithDescription("List the bookmark folder tree, flattened depth first with ' / '-joined label paths."),
	mcp.WithNumber("exclude_folder_id", mcp.Description("Skip this folder and its subtree")),
)

var siteRecentsToolDef = mcp.NewTool("site_recents",
	mcp.WithDescription("List all tagged records plus the most recently accessed history entries, capped by configuration."),
)

var siteClearHistoryToolDef = mcp.NewTool("site_clear_history",
	mcp.WithDescription("Delete all untagged history entries and clear access times on tagged records."),
)
