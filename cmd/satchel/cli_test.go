package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/db"
	"github.com/pcadley/satchel/internal/ops"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	cleanup := func() {
		database.Close()
	}
	return database, cleanup
}

// runCLI runs the app with the given args, capturing stdout.
func runCLI(t *testing.T, database *sql.DB, args ...string) (string, error) {
	t.Helper()

	app := newCLIApp(database, config.DefaultConfig(), t.TempDir())

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := app.Run(append([]string{"satchel"}, args...))

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	return buf.String(), err
}

// seedSite adds a record directly through the ops layer.
func seedSite(t *testing.T, database *sql.DB, input ops.AddSiteInput) {
	t.Helper()
	if _, err := ops.AddSite(database, config.DefaultConfig(), input); err != nil {
		t.Fatalf("failed to seed site: %v", err)
	}
}

// TestCLIAdd tests the add command.
func TestCLIAdd(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	out, err := runCLI(t, database, "add", "--location=https://example.com/", "--title=Example")
	if err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	var output ops.AddSiteOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}

	if output.Count != 1 {
		t.Errorf("expected count=1, got %d", output.Count)
	}
	if output.Site.Location != "https://example.com/" {
		t.Errorf("expected location=https://example.com/, got %s", output.Site.Location)
	}
}

// TestCLIAddFolder tests creating a bookmark folder via add.
func TestCLIAddFolder(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	out, err := runCLI(t, database, "add", "--custom-title=Work", "--tag=bookmark-folder")
	if err != nil {
		t.Fatalf("add command failed: %v", err)
	}

	var output ops.AddSiteOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if output.Site.FolderID != 1 {
		t.Errorf("expected folder_id=1, got %d", output.Site.FolderID)
	}
	if output.Site.CustomTitle != "Work" {
		t.Errorf("expected custom_title=Work, got %s", output.Site.CustomTitle)
	}
}

// TestCLIList tests the list command.
func TestCLIList(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	seedSite(t, database, ops.AddSiteInput{
		Site: ops.SiteInput{Location: "https://a.example/"},
	})
	seedSite(t, database, ops.AddSiteInput{
		Site: ops.SiteInput{Location: "https://b.example/"},
		Tag:  "bookmark",
	})

	t.Run("all", func(t *testing.T) {
		out, err := runCLI(t, database, "list")
		if err != nil {
			t.Fatalf("list command failed: %v", err)
		}

		var output ops.ListSitesOutput
		if err := json.Unmarshal([]byte(out), &output); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if output.Total != 2 {
			t.Errorf("expected total=2, got %d", output.Total)
		}
	})

	t.Run("bookmarks filter", func(t *testing.T) {
		out, err := runCLI(t, database, "list", "--filter=bookmarks")
		if err != nil {
			t.Fatalf("list command failed: %v", err)
		}

		var output ops.ListSitesOutput
		if err := json.Unmarshal([]byte(out), &output); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if output.Total != 1 {
			t.Errorf("expected total=1, got %d", output.Total)
		}
		if len(output.Sites) != 1 || output.Sites[0].Location != "https://b.example/" {
			t.Errorf("expected the bookmark only, got %+v", output.Sites)
		}
	})
}

// TestCLIRemove tests the remove command.
func TestCLIRemove(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	seedSite(t, database, ops.AddSiteInput{
		Site: ops.SiteInput{Location: "https://example.com/"},
	})

	out, err := runCLI(t, database, "remove", "--location=https://example.com/")
	if err != nil {
		t.Fatalf("remove command failed: %v", err)
	}

	var output ops.RemoveSiteOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if output.Removed != 1 {
		t.Errorf("expected removed=1, got %d", output.Removed)
	}
	if output.Count != 0 {
		t.Errorf("expected count=0, got %d", output.Count)
	}
}

// TestCLIMove tests the move command.
func TestCLIMove(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	for _, loc := range []string{"https://a.example/", "https://b.example/", "https://c.example/"} {
		seedSite(t, database, ops.AddSiteInput{
			Site: ops.SiteInput{Location: loc},
		})
	}

	out, err := runCLI(t, database, "move", "--from=https://a.example/", "--to=https://c.example/")
	if err != nil {
		t.Fatalf("move command failed: %v", err)
	}

	var output ops.MoveSiteOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if !output.Moved {
		t.Error("expected moved=true")
	}

	list, err := db.LoadSites(database)
	if err != nil {
		t.Fatalf("failed to load sites: %v", err)
	}
	if list[2].Location != "https://a.example/" {
		t.Errorf("expected a.example last, got %s", list[2].Location)
	}
}

// TestCLIFavicon tests the favicon command.
func TestCLIFavicon(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	seedSite(t, database, ops.AddSiteInput{
		Site: ops.SiteInput{Location: "https://example.com/"},
	})

	out, err := runCLI(t, database, "favicon",
		"--location=https://example.com/", "--icon=https://example.com/icon.png")
	if err != nil {
		t.Fatalf("favicon command failed: %v", err)
	}

	var output ops.SetFaviconOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if output.Updated != 1 {
		t.Errorf("expected updated=1, got %d", output.Updated)
	}
}

// TestCLISnapshot tests the snapshot subcommands.
func TestCLISnapshot(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	seedSite(t, database, ops.AddSiteInput{
		Site: ops.SiteInput{Location: "https://example.com/"},
	})

	out, err := runCLI(t, database, "snapshot", "create", "--label=before")
	if err != nil {
		t.Fatalf("snapshot create failed: %v", err)
	}
	var createOut ops.SnapshotCreateOutput
	if err := json.Unmarshal([]byte(out), &createOut); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if createOut.Snapshot.ID == "" {
		t.Fatal("expected non-empty snapshot id")
	}

	out, err = runCLI(t, database, "snapshot", "list")
	if err != nil {
		t.Fatalf("snapshot list failed: %v", err)
	}
	var listOut ops.SnapshotListOutput
	if err := json.Unmarshal([]byte(out), &listOut); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if len(listOut.Snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(listOut.Snapshots))
	}
	if listOut.Snapshots[0].Label != "before" {
		t.Errorf("expected label=before, got %s", listOut.Snapshots[0].Label)
	}

	// Wipe the list, then restore.
	if _, err := ops.ClearHistory(database); err != nil {
		t.Fatalf("failed to clear history: %v", err)
	}
	out, err = runCLI(t, database, "snapshot", "restore", createOut.Snapshot.ID)
	if err != nil {
		t.Fatalf("snapshot restore failed: %v", err)
	}
	var restoreOut ops.SnapshotRestoreOutput
	if err := json.Unmarshal([]byte(out), &restoreOut); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if !restoreOut.Restored {
		t.Error("expected restored=true")
	}
	if restoreOut.Count != 1 {
		t.Errorf("expected count=1, got %d", restoreOut.Count)
	}
}

// TestCLIImportExport tests the import and export commands.
func TestCLIImportExport(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	importPath := filepath.Join(t.TempDir(), "bookmarks.yaml")
	yamlDoc := `folders:
  - title: Work
    bookmarks:
      - location: https://a.example/
        title: A
bookmarks:
  - location: https://b.example/
    title: B
`
	if err := os.WriteFile(importPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}

	t.Run("import", func(t *testing.T) {
		out, err := runCLI(t, database, "import", importPath)
		if err != nil {
			t.Fatalf("import command failed: %v", err)
		}

		var output ops.ImportOutput
		if err := json.Unmarshal([]byte(out), &output); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if output.Folders != 1 {
			t.Errorf("expected folders=1, got %d", output.Folders)
		}
		if output.Bookmarks != 2 {
			t.Errorf("expected bookmarks=2, got %d", output.Bookmarks)
		}
	})

	t.Run("export", func(t *testing.T) {
		exportPath := filepath.Join(t.TempDir(), "bookmarks.md")
		out, err := runCLI(t, database, "export", "--path="+exportPath)
		if err != nil {
			t.Fatalf("export command failed: %v", err)
		}

		var output ops.ExportOutput
		if err := json.Unmarshal([]byte(out), &output); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if output.Path != exportPath {
			t.Errorf("expected path=%s, got %s", exportPath, output.Path)
		}
		if output.Bookmarks != 2 {
			t.Errorf("expected bookmarks=2, got %d", output.Bookmarks)
		}

		if _, err := os.Stat(exportPath); err != nil {
			t.Errorf("expected export file to exist: %v", err)
		}
	})
}

// TestCLIErrorHandling tests error handling in CLI commands.
func TestCLIErrorHandling(t *testing.T) {
	database, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("remove not found returns error", func(t *testing.T) {
		_, err := runCLI(t, database, "remove", "--location=https://missing.example/")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("import without path returns error", func(t *testing.T) {
		_, err := runCLI(t, database, "import")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("snapshot restore without id returns error", func(t *testing.T) {
		_, err := runCLI(t, database, "snapshot", "restore")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("invalid list filter returns error", func(t *testing.T) {
		_, err := runCLI(t, database, "list", "--filter=starred")
		if err == nil {
			t.Error("expected error, got nil")
		}
	})
}

// TestIsCLIMode tests the isCLIMode function.
func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no args",
			args:     []string{"satchel"},
			expected: false,
		},
		{
			name:     "add command",
			args:     []string{"satchel", "add"},
			expected: true,
		},
		{
			name:     "snapshot command",
			args:     []string{"satchel", "snapshot"},
			expected: true,
		},
		{
			name:     "serve command",
			args:     []string{"satchel", "serve"},
			expected: true,
		},
		{
			name:     "help flag",
			args:     []string{"satchel", "--help"},
			expected: true,
		},
		{
			name:     "version flag",
			args:     []string{"satchel", "--version"},
			expected: true,
		},
		{
			name:     "unknown arg defaults to MCP",
			args:     []string{"satchel", "--unknown"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			result := isCLIMode()

			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

// TestIsHelpOrVersion tests the isHelpOrVersion function.
func TestIsHelpOrVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{
			name:     "no args",
			args:     []string{"satchel"},
			expected: false,
		},
		{
			name:     "help flag",
			args:     []string{"satchel", "--help"},
			expected: true,
		},
		{
			name:     "short help flag",
			args:     []string{"satchel", "-h"},
			expected: true,
		},
		{
			name:     "version flag",
			args:     []string{"satchel", "--version"},
			expected: true,
		},
		{
			name:     "help subcommand",
			args:     []string{"satchel", "help"},
			expected: true,
		},
		{
			name:     "add command is not help",
			args:     []string{"satchel", "add"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			result := isHelpOrVersion()

			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
