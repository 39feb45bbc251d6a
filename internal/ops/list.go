package ops

import (
	"database/sql"
	"strconv"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/site"
	"github.com/pcadley/satchel/internal/sitelist"
)

// List filters.
const (
	FilterAll       = "all"
	FilterBookmarks = "bookmarks"
	FilterHistory   = "history"
)

// ListSitesInput contains parameters for the ListSites operation.
type ListSitesInput struct {
	// Filter: all (default), bookmarks, or history.
	Filter string `json:"filter,omitempty"`

	// FolderID, when non-zero, restricts the listing to a folder's direct
	// children.
	FolderID int `json:"folder_id,omitempty"`
}

// ListSitesOutput contains the result of the ListSites operation.
type ListSitesOutput struct {
	Sites []SiteView `json:"sites"`
	Total int        `json:"total"`
}

// ListSites returns the site list in display order, optionally narrowed to
// one folder's children and/or one kind of record.
func ListSites(database *sql.DB, input ListSitesInput) (*ListSitesOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	if input.FolderID != 0 {
		idx := sitelist.FindIndex(list, site.Detail{FolderID: input.FolderID}, site.TagBookmarkFolder)
		if idx < 0 {
			return nil, errors.NewNotFound("folder " + strconv.Itoa(input.FolderID))
		}
		list = sitelist.ChildrenOf(list, list[idx])
	}

	switch input.Filter {
	case "", FilterAll:
	case FilterBookmarks:
		list = sitelist.Bookmarks(list)
	case FilterHistory:
		history := make(sitelist.List, 0, len(list))
		for _, s := range list {
			if len(s.Tags) == 0 {
				history = append(history, s)
			}
		}
		list = history
	default:
		return nil, errors.NewInvalidRequest("filter must be one of: all, bookmarks, history")
	}

	return &ListSitesOutput{Sites: viewsOf(list), Total: len(list)}, nil
}
