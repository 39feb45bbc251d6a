package db

import (
	"database/sql"
	"errors"
	"testing"
)

func TestCreateAndGetSnapshot(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	list := testList()
	snap, err := CreateSnapshot(database, "before cleanup", list)
	if err != nil {
		t.Fatalf("CreateSnapshot failed: %v", err)
	}

	if len(snap.ID) != 26 {
		t.Errorf("ID length = %d, want 26 (ULID)", len(snap.ID))
	}
	if snap.Label != "before cleanup" {
		t.Errorf("Label = %q", snap.Label)
	}
	if snap.SiteCount != len(list) {
		t.Errorf("SiteCount = %d, want %d", snap.SiteCount, len(list))
	}

	got, err := GetSnapshot(database, snap.ID)
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}
	if len(got) != len(list) {
		t.Fatalf("len = %d, want %d", len(got), len(list))
	}
	if got[0].Location != list[0].Location {
		t.Errorf("Location = %q, want %q", got[0].Location, list[0].Location)
	}
}

func TestGetSnapshot_NotFound(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	_, err = GetSnapshot(database, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestListSnapshots(t *testing.T) {
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	for i := 0; i < 3; i++ {
		if _, err := CreateSnapshot(database, "", testList()); err != nil {
			t.Fatalf("CreateSnapshot failed: %v", err)
		}
	}

	snaps, err := ListSnapshots(database, 2)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("len = %d, want 2 (limit applied)", len(snaps))
	}
	// Newest first: ids are ULIDs, so later snapshots sort higher.
	if snaps[0].ID < snaps[1].ID {
		t.Errorf("order: %q before %q, want newest first", snaps[0].ID, snaps[1].ID)
	}
}
