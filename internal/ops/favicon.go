package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/sitelist"
)

// SetFaviconInput contains parameters for the SetFavicon operation.
type SetFaviconInput struct {
	Location string `json:"location"`
	Favicon  string `json:"favicon"`
}

// SetFaviconOutput contains the result of the SetFavicon operation.
type SetFaviconOutput struct {
	Updated int `json:"updated"`
}

// SetFavicon applies a favicon to every record matching the (normalized)
// location and persists the new list.
func SetFavicon(database *sql.DB, input SetFaviconInput) (*SetFaviconOutput, error) {
	if input.Location == "" {
		return nil, errors.NewInvalidRequest("location is required")
	}

	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	updated := sitelist.UpdateFavicon(list, input.Location, input.Favicon, nil)

	changed := 0
	for i := range updated {
		if updated[i].Favicon != list[i].Favicon {
			changed++
		}
	}
	if changed == 0 {
		return &SetFaviconOutput{Updated: 0}, nil
	}

	if err := saveList(database, updated); err != nil {
		return nil, err
	}
	return &SetFaviconOutput{Updated: changed}, nil
}
