package ops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExport_WritesMarkdown(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	path := filepath.Join(t.TempDir(), "out.md")
	out, err := Export(database, ExportInput{Path: path})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if out.Path != path {
		t.Errorf("Path = %q, want %q", out.Path, path)
	}
	if out.Bookmarks != 1 {
		t.Errorf("Bookmarks = %d, want 1", out.Bookmarks)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "# Bookmarks") {
		t.Error("missing document heading")
	}
	if !strings.Contains(content, "## Work") {
		t.Error("missing folder section")
	}
	if !strings.Contains(content, "- [A](https://a.example)") {
		t.Errorf("missing bookmark line:\n%s", content)
	}
	// History entries are not bookmarks and stay out of the export.
	if strings.Contains(content, "b.example") {
		t.Error("history entry leaked into the export")
	}
}

func TestExport_HTML(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	path := filepath.Join(t.TempDir(), "out.md")
	out, err := Export(database, ExportInput{Path: path, HTML: true})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if out.HTMLPath == "" {
		t.Fatal("HTMLPath empty")
	}
	data, err := os.ReadFile(out.HTMLPath)
	if err != nil {
		t.Fatalf("read html export: %v", err)
	}
	if !strings.Contains(string(data), "<h1") {
		t.Error("html export missing rendered heading")
	}
	if !strings.Contains(string(data), `<a href="https://a.example"`) {
		t.Error("html export missing rendered link")
	}
}

func TestExport_DefaultPathUnderBaseDir(t *testing.T) {
	database := testDB(t)
	baseDir := t.TempDir()

	out, err := Export(database, ExportInput{BaseDir: baseDir})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.HasPrefix(out.Path, filepath.Join(baseDir, "exports")) {
		t.Errorf("Path = %q, want under the exports directory", out.Path)
	}
	if _, err := os.Stat(out.Path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
