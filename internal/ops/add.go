package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/sitelist"
)

// AddSiteInput contains parameters for the AddSite operation.
type AddSiteInput struct {
	Site SiteInput `json:"site"`

	// Tag to apply; defaults to the site's first tag.
	Tag string `json:"tag,omitempty"`

	// Original, when present, addresses the existing record being updated
	// in place of the new identity fields (rename-style moves).
	Original *SiteInput `json:"original,omitempty"`
}

// AddSiteOutput contains the result of the AddSite operation.
type AddSiteOutput struct {
	Site  SiteView `json:"site"`
	Count int      `json:"count"`
}

// AddSite adds a site record or updates the existing one with the same
// identity, then persists the new list.
func AddSite(database *sql.DB, cfg *config.Config, input AddSiteInput) (*AddSiteOutput, error) {
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

	if input.Original != nil {
		od, err := input.Original.ToDetail()
		if err != nil {
			return nil, err
		}
		list = sitelist.Add(list, d, tag, &od, nowMillis)
	} else {
		list = sitelist.Add(list, d, tag, nil, nowMillis)
	}

	if err := saveList(database, list); err != nil {
		return nil, err
	}

	if tag == "" {
		tag, _ = d.FirstTag()
	}
	out := &AddSiteOutput{Count: len(list)}
	if idx := sitelist.FindIndex(list, d, tag); idx >= 0 {
		out.Site = viewOf(list[idx])
	} else if len(list) > 0 {
		// Fresh records (including folders that were just assigned an id)
		// land at the end of the list.
		out.Site = viewOf(list[len(list)-1])
	}
	return out, nil
}
