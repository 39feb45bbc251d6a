package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/config"
	"github.com/pcadley/satchel/internal/sitelist"
)

// RecentsOutput contains the result of the Recents operation.
type RecentsOutput struct {
	Sites []SiteView `json:"sites"`
	Cap   int        `json:"cap"`
}

// Recents returns every tagged record plus the most recently accessed
// history entries, capped by configuration.
func Recents(database *sql.DB, cfg *config.Config) (*RecentsOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}
	trimmed := sitelist.Recents(list, cfg.MaxHistorySites)
	return &RecentsOutput{Sites: viewsOf(trimmed), Cap: cfg.MaxHistorySites}, nil
}
