package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/sitelist"
)

// ClearHistoryOutput contains the result of the ClearHistory operation.
type ClearHistoryOutput struct {
	Removed int `json:"removed"`
	Count   int `json:"count"`
}

// ClearHistory deletes every untagged record, clears access times on the
// tagged ones, and persists the new list.
func ClearHistory(database *sql.DB) (*ClearHistoryOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	updated := sitelist.ClearHistory(list)
	if err := saveList(database, updated); err != nil {
		return nil, err
	}

	return &ClearHistoryOutput{
		Removed: len(list) - len(updated),
		Count:   len(updated),
	}, nil
}
