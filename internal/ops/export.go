package ops

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/site"
	"github.com/pcadley/satchel/internal/sitelist"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	// Path of the markdown file to write; defaults to
	// baseDir/exports/bookmarks-<timestamp>.md.
	Path string `json:"path,omitempty"`

	// BaseDir is where the default export directory lives.
	BaseDir string `json:"-"`

	// HTML also renders the markdown to an .html file next to it.
	HTML bool `json:"html,omitempty"`
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path      string `json:"path"`
	HTMLPath  string `json:"html_path,omitempty"`
	Bookmarks int    `json:"bookmarks"`
}

// Export writes the bookmark tree as a markdown document, one section per
// folder, and optionally an HTML rendering of it.
func Export(database *sql.DB, input ExportInput) (*ExportOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	path := input.Path
	if path == "" {
		name := fmt.Sprintf("bookmarks-%s.md", time.Now().UTC().Format("20060102-150405"))
		path = filepath.Join(input.BaseDir, "exports", name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	markdown, count := renderBookmarks(list)
	if err := os.WriteFile(path, []byte(markdown), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export: %w", err))
	}

	out := &ExportOutput{Path: path, Bookmarks: count}
	if input.HTML {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to render export: %w", err))
		}
		htmlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
		if err := os.WriteFile(htmlPath, buf.Bytes(), 0600); err != nil {
			return nil, errors.NewInternal(fmt.Errorf("failed to write html export: %w", err))
		}
		out.HTMLPath = htmlPath
	}
	return out, nil
}

// renderBookmarks builds the markdown document: top-level bookmarks first,
// then one heading per folder in tree order.
func renderBookmarks(list sitelist.List) (string, int) {
	var b strings.Builder
	b.WriteString("# Bookmarks\n")

	count := writeBookmarkLines(&b, list, 0)
	for _, folder := range sitelist.Folders(list, 0) {
		b.WriteString("\n## " + folder.Label + "\n")
		count += writeBookmarkLines(&b, list, folder.FolderID)
	}
	return b.String(), count
}

func writeBookmarkLines(b *strings.Builder, list sitelist.List, parentID int) int {
	count := 0
	for _, s := range list {
		if !s.HasTag(site.TagBookmark) || s.ParentFolderID != parentID {
			continue
		}
		title := s.DisplayTitle()
		if title == "" {
			title = s.Location
		}
		fmt.Fprintf(b, "- [%s](%s)\n", title, s.Location)
		count++
	}
	return count
}
