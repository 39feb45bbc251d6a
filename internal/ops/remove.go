package ops

import (
	"database/sql"
	"strconv"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/sitelist"
)

// RemoveSiteInput contains parameters for the RemoveSite operation.
type RemoveSiteInput struct {
	Site SiteInput `json:"site"`

	// Tag to strip. Empty means remove the record (history entries) or
	// clear its history (tagged records).
	Tag string `json:"tag,omitempty"`
}

// RemoveSiteOutput contains the result of the RemoveSite operation.
type RemoveSiteOutput struct {
	Removed int `json:"removed"`
	Count   int `json:"count"`
}

// RemoveSite removes the addressed record (cascading through folders) and
// persists the new list. Addressing a record that does not exist is an
// error at this layer, unlike in the engine.
func RemoveSite(database *sql.DB, input RemoveSiteInput) (*RemoveSiteOutput, error) {
	d, err := input.Site.ToDetail()
	if err != nil {
		return nil, err
	}
	tag, err := parseTag(input.Tag)
	if err != nil {
		return nil, err
	}

	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	ctx := tag
	if ctx == "" {
		ctx, _ = d.FirstTag()
	}
	if sitelist.FindIndex(list, d, ctx) < 0 {
		return nil, errors.NewNotFound(identifierOf(input.Site))
	}

	updated := sitelist.Remove(list, d, tag)
	if err := saveList(database, updated); err != nil {
		return nil, err
	}

	return &RemoveSiteOutput{
		Removed: len(list) - len(updated),
		Count:   len(updated),
	}, nil
}

// identifierOf renders a human-readable identity for error messages.
func identifierOf(in SiteInput) string {
	if in.Location != "" {
		return in.Location
	}
	if in.FolderID != 0 {
		return "folder " + strconv.Itoa(in.FolderID)
	}
	return "(unaddressed site)"
}
