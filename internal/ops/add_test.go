package ops

import (
	"testing"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/errors"
)

func TestAddSite_HistoryEntry(t *testing.T) {
	database := testDB(t)
	cfg := config.DefaultConfig()

	out, err := AddSite(database, cfg, AddSiteInput{
		Site: SiteInput{Location: "https://a.example", Title: "A"},
	})
	if err != nil {
		t.Fatalf("AddSite failed: %v", err)
	}

	if out.Count != 1 {
		t.Errorf("Count = %d, want 1", out.Count)
	}
	if out.Site.Location != "https://a.example" {
		t.Errorf("Site.Location = %q", out.Site.Location)
	}
	if out.Site.LastAccessed == nil || *out.Site.LastAccessed != 1000 {
		t.Errorf("Site.LastAccessed = %v, want pinned clock 1000", out.Site.LastAccessed)
	}
	if out.Site.Count != 1 {
		t.Errorf("Site.Count = %d, want 1", out.Site.Count)
	}
}

func TestAddSite_RevisitUpdatesInPlace(t *testing.T) {
	database := testDB(t)
	cfg := config.DefaultConfig()

	for i := 0; i < 2; i++ {
		if _, err := AddSite(database, cfg, AddSiteInput{
			Site: SiteInput{Location: "https://a.example"},
		}); err != nil {
			t.Fatalf("AddSite failed: %v", err)
		}
	}

	list := mustLoad(t, database)
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].Count != 2 {
		t.Errorf("Count = %d, want 2", list[0].Count)
	}
}

func TestAddSite_Bookmark(t *testing.T) {
	database := testDB(t)
	cfg := config.DefaultConfig()

	out, err := AddSite(database, cfg, AddSiteInput{
		Site: SiteInput{Location: "https://a.example", Title: "A"},
		Tag:  "bookmark",
	})
	if err != nil {
		t.Fatalf("AddSite failed: %v", err)
	}

	if len(out.Site.Tags) != 1 || out.Site.Tags[0] != "bookmark" {
		t.Errorf("Tags = %v, want [bookmark]", out.Site.Tags)
	}
	if out.Site.LastAccessed == nil || *out.Site.LastAccessed != 0 {
		t.Errorf("LastAccessed = %v, want 0 for fresh bookmarks", out.Site.LastAccessed)
	}
}

func TestAddSite_NewFolderAssignsID(t *testing.T) {
	database := testDB(t)
	cfg := config.DefaultConfig()

	out, err := AddSite(database, cfg, AddSiteInput{
		Site: SiteInput{CustomTitle: strPtr("Work")},
		Tag:  "bookmark-folder",
	})
	if err != nil {
		t.Fatalf("AddSite failed: %v", err)
	}

	if out.Site.FolderID != 1 {
		t.Errorf("FolderID = %d, want 1", out.Site.FolderID)
	}
	if out.Site.CustomTitle != "Work" {
		t.Errorf("CustomTitle = %q", out.Site.CustomTitle)
	}

	out, err = AddSite(database, cfg, AddSiteInput{
		Site: SiteInput{CustomTitle: strPtr("Play")},
		Tag:  "bookmark-folder",
	})
	if err != nil {
		t.Fatalf("second AddSite failed: %v", err)
	}
	if out.Site.FolderID != 2 {
		t.Errorf("FolderID = %d, want 2", out.Site.FolderID)
	}
}

func TestAddSite_InvalidTag(t *testing.T) {
	database := testDB(t)

	_, err := AddSite(database, config.DefaultConfig(), AddSiteInput{
		Site: SiteInput{Location: "https://a.example"},
		Tag:  "favorite",
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}

func TestAddSite_OriginalRelocatesBookmark(t *testing.T) {
	database := testDB(t)
	cfg := config.DefaultConfig()
	seedSites(t, database, seedFolderWithBookmark())

	out, err := AddSite(database, cfg, AddSiteInput{
		Site: SiteInput{Location: "https://moved.example", Tags: []string{"bookmark"}},
		Tag:  "bookmark",
		Original: &SiteInput{
			Location: "https://a.example",
			Tags:     []string{"bookmark"},
		},
	})
	if err != nil {
		t.Fatalf("AddSite failed: %v", err)
	}

	if out.Count != 3 {
		t.Errorf("Count = %d, want 3 (updated in place)", out.Count)
	}
	if out.Site.Location != "https://moved.example" {
		t.Errorf("Site.Location = %q", out.Site.Location)
	}
}
