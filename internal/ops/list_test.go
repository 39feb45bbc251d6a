package ops

import (
	"testing"

	"github.com/pcadley/satchel/internal/errors"
)

func TestListSites_All(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	out, err := ListSites(database, ListSitesInput{})
	if err != nil {
		t.Fatalf("ListSites failed: %v", err)
	}

	if out.Total != 3 {
		t.Errorf("Total = %d, want 3", out.Total)
	}
	if len(out.Sites) != 3 {
		t.Errorf("len(Sites) = %d, want 3", len(out.Sites))
	}
}

func TestListSites_BookmarksFilter(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	out, err := ListSites(database, ListSitesInput{Filter: FilterBookmarks})
	if err != nil {
		t.Fatalf("ListSites failed: %v", err)
	}

	if out.Total != 2 {
		t.Fatalf("Total = %d, want 2 (folder + bookmark)", out.Total)
	}
	for _, s := range out.Sites {
		if len(s.Tags) == 0 {
			t.Errorf("untagged record %q in bookmarks filter", s.Location)
		}
	}
}

func TestListSites_HistoryFilter(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	out, err := ListSites(database, ListSitesInput{Filter: FilterHistory})
	if err != nil {
		t.Fatalf("ListSites failed: %v", err)
	}

	if out.Total != 1 {
		t.Fatalf("Total = %d, want 1", out.Total)
	}
	if out.Sites[0].Location != "https://b.example" {
		t.Errorf("Location = %q", out.Sites[0].Location)
	}
}

func TestListSites_FolderNarrowing(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	out, err := ListSites(database, ListSitesInput{FolderID: 1})
	if err != nil {
		t.Fatalf("ListSites failed: %v", err)
	}

	if out.Total != 1 {
		t.Fatalf("Total = %d, want 1", out.Total)
	}
	if out.Sites[0].Location != "https://a.example" {
		t.Errorf("Location = %q", out.Sites[0].Location)
	}
}

func TestListSites_UnknownFolder(t *testing.T) {
	database := testDB(t)
	seedSites(t, database, seedFolderWithBookmark())

	_, err := ListSites(database, ListSitesInput{FolderID: 99})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestListSites_InvalidFilter(t *testing.T) {
	database := testDB(t)

	_, err := ListSites(database, ListSitesInput{Filter: "starred"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}
