package db

import (
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pcadley/satchel/internal/sitelist"
)

// Snapshot describes one stored point-in-time copy of the site list.
type Snapshot struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	TakenAt   int64  `json:"taken_at"`
	SiteCount int    `json:"site_count"`
}

// CreateSnapshot stores a copy of the given list and returns its metadata.
func CreateSnapshot(database *sql.DB, label string, list sitelist.List) (*Snapshot, error) {
	id, err := generateULID()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	snap := &Snapshot{
		ID:        id,
		Label:     label,
		TakenAt:   time.Now().Unix(),
		SiteCount: len(list),
	}
	_, err = database.Exec(`
		INSERT INTO snapshots (id, label, taken_at, site_count, sites_json)
		VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.Label, snap.TakenAt, snap.SiteCount, string(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns snapshot metadata, newest first.
func ListSnapshots(database *sql.DB, limit int) ([]Snapshot, error) {
	rows, err := database.Query(`
		SELECT id, label, taken_at, site_count
		FROM snapshots
		ORDER BY taken_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snaps := make([]Snapshot, 0)
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Label, &s.TakenAt, &s.SiteCount); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// GetSnapshot loads the site list stored under the given snapshot id.
// Returns sql.ErrNoRows when the snapshot does not exist.
func GetSnapshot(database *sql.DB, id string) (sitelist.List, error) {
	var payload string
	err := database.QueryRow(`SELECT sites_json FROM snapshots WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		return nil, err
	}

	var list sitelist.List
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return list, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
