package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pcadley/satchel/internal/site"
	"github.com/pcadley/satchel/internal/sitelist"
)

// LoadSites reads the persisted site list in display order.
func LoadSites(database *sql.DB) (sitelist.List, error) {
	rows, err := database.Query(`
		SELECT location, title, custom_title, tags_json, last_accessed,
		       visit_count, folder_id, parent_folder_id, partition_number,
		       favicon, theme_color
		FROM sites
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load sites: %w", err)
	}
	defer rows.Close()

	list := make(sitelist.List, 0)
	for rows.Next() {
		var s site.Site
		var tagsJSON sql.NullString
		var lastAccessed sql.NullInt64
		if err := rows.Scan(&s.Location, &s.Title, &s.CustomTitle, &tagsJSON,
			&lastAccessed, &s.Count, &s.FolderID, &s.ParentFolderID,
			&s.PartitionNumber, &s.Favicon, &s.ThemeColor); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		if tagsJSON.Valid && tagsJSON.String != "" {
			if err := json.Unmarshal([]byte(tagsJSON.String), &s.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode tags: %w", err)
			}
		}
		if lastAccessed.Valid {
			la := lastAccessed.Int64
			s.LastAccessed = &la
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SaveSites replaces the persisted site list with the given one, keeping
// row positions aligned with list order. The swap happens in a single
// transaction so readers never observe a partial list.
func SaveSites(database *sql.DB, list sitelist.List) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sites`); err != nil {
		return fmt.Errorf("failed to clear sites: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO sites (position, location, title, custom_title, tags_json,
		                   last_accessed, visit_count, folder_id,
		                   parent_folder_id, partition_number, favicon,
		                   theme_color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare site insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range list {
		tagsJSON, err := encodeTags(s.Tags)
		if err != nil {
			return err
		}
		var lastAccessed sql.NullInt64
		if s.LastAccessed != nil {
			lastAccessed = sql.NullInt64{Int64: *s.LastAccessed, Valid: true}
		}
		if _, err := stmt.Exec(i, s.Location, s.Title, s.CustomTitle, tagsJSON,
			lastAccessed, s.Count, s.FolderID, s.ParentFolderID,
			s.PartitionNumber, s.Favicon, s.ThemeColor); err != nil {
			return fmt.Errorf("failed to insert site row: %w", err)
		}
	}

	return tx.Commit()
}

func encodeTags(tags []site.Tag) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode tags: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
