// Package ops bridges the surfaces (CLI, MCP, web) to the pure site list
// engine: each operation loads the persisted list, applies engine
// functions, and saves the result in one step.
package ops

import (
	"database/sql"
	"time"

	"github.com/pcadley/satchel/internal/db"
	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/site"
	"github.com/pcadley/satchel/internal/sitelist"
)

// Listing limits.
const (
	DefaultSnapshotLimit = 20
	MaxSnapshotLimit     = 100
)

// nowMillis feeds the engine's clock. Overridable in tests.
var nowMillis site.Clock = func() int64 { return time.Now().UnixMilli() }

// SiteInput is the wire-level form of a partial site record shared by the
// mutation operations.
type SiteInput struct {
	Location        string   `json:"location,omitempty"`
	Title           string   `json:"title,omitempty"`
	CustomTitle     *string  `json:"custom_title,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	LastAccessed    *int64   `json:"last_accessed,omitempty"`
	FolderID        int      `json:"folder_id,omitempty"`
	ParentFolderID  *int     `json:"parent_folder_id,omitempty"`
	PartitionNumber *int     `json:"partition_number,omitempty"`
	Favicon         string   `json:"favicon,omitempty"`
	ThemeColor      string   `json:"theme_color,omitempty"`
}

// ToDetail validates the input and converts it into an engine partial.
func (in SiteInput) ToDetail() (site.Detail, error) {
	d := site.Detail{
		Location:        in.Location,
		Title:           in.Title,
		CustomTitle:     in.CustomTitle,
		LastAccessed:    in.LastAccessed,
		FolderID:        in.FolderID,
		ParentFolderID:  in.ParentFolderID,
		PartitionNumber: in.PartitionNumber,
		Favicon:         in.Favicon,
		ThemeColor:      in.ThemeColor,
	}
	for _, raw := range in.Tags {
		tag, err := site.ParseTag(raw)
		if err != nil {
			return site.Detail{}, errors.NewInvalidRequest(err.Error())
		}
		if tag != "" {
			d.Tags = append(d.Tags, tag)
		}
	}
	return d, nil
}

// SiteView is the JSON-friendly projection of a site record returned by
// the read operations.
type SiteView struct {
	Location        string   `json:"location,omitempty"`
	Title           string   `json:"title,omitempty"`
	CustomTitle     string   `json:"custom_title,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	LastAccessed    *int64   `json:"last_accessed"`
	Count           int      `json:"count,omitempty"`
	FolderID        int      `json:"folder_id,omitempty"`
	ParentFolderID  int      `json:"parent_folder_id,omitempty"`
	PartitionNumber int      `json:"partition_number,omitempty"`
	Favicon         string   `json:"favicon,omitempty"`
	ThemeColor      string   `json:"theme_color,omitempty"`
}

func viewOf(s site.Site) SiteView {
	v := SiteView{
		Location:        s.Location,
		Title:           s.Title,
		CustomTitle:     s.CustomTitle,
		LastAccessed:    s.LastAccessed,
		Count:           s.Count,
		FolderID:        s.FolderID,
		ParentFolderID:  s.ParentFolderID,
		PartitionNumber: s.PartitionNumber,
		Favicon:         s.Favicon,
		ThemeColor:      s.ThemeColor,
	}
	for _, t := range s.Tags {
		v.Tags = append(v.Tags, string(t))
	}
	return v
}

func viewsOf(l sitelist.List) []SiteView {
	views := make([]SiteView, len(l))
	for i, s := range l {
		views[i] = viewOf(s)
	}
	return views
}

// loadList wraps db.LoadSites with the structured error type.
func loadList(database *sql.DB) (sitelist.List, error) {
	list, err := db.LoadSites(database)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return list, nil
}

// saveList wraps db.SaveSites with the structured error type.
func saveList(database *sql.DB, list sitelist.List) error {
	if err := db.SaveSites(database, list); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// firstTag returns the leading tag of a set, or the empty tag.
func firstTag(tags []site.Tag) site.Tag {
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

func parseTag(raw string) (site.Tag, error) {
	tag, err := site.ParseTag(raw)
	if err != nil {
		return "", errors.NewInvalidRequest(err.Error())
	}
	return tag, nil
}
