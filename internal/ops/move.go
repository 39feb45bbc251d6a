package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/errors"
	"github.com/pcadley/satchel/internal/sitelist"
)

// MoveSiteInput contains parameters for the MoveSite operation.
type MoveSiteInput struct {
	Source      SiteInput `json:"source"`
	Destination SiteInput `json:"destination"`

	// Prepend inserts before the destination instead of after it.
	Prepend bool `json:"prepend,omitempty"`

	// DestinationIsParent appends the source as the destination folder's
	// last child.
	DestinationIsParent bool `json:"destination_is_parent,omitempty"`

	// DisallowReparent keeps the source's current parent folder.
	DisallowReparent bool `json:"disallow_reparent,omitempty"`
}

// MoveSiteOutput contains the result of the MoveSite operation.
type MoveSiteOutput struct {
	Moved bool `json:"moved"`
	Count int  `json:"count"`
}

// MoveSite repositions a record relative to another and persists the new
// list. Moves that would cycle the folder tree are rejected.
func MoveSite(database *sql.DB, input MoveSiteInput) (*MoveSiteOutput, error) {
	sourceDetail, err := input.Source.ToDetail()
	if err != nil {
		return nil, err
	}
	destDetail, err := input.Destination.ToDetail()
	if err != nil {
		return nil, err
	}

	list, err := loadList(database)
	if err != nil {
		return nil, err
	}

	sourceIdx := sitelist.FindIndex(list, sourceDetail, firstTag(sourceDetail.Tags))
	destIdx := sitelist.FindIndex(list, destDetail, firstTag(destDetail.Tags))
	if sourceIdx < 0 {
		return nil, errors.NewNotFound(identifierOf(input.Source))
	}
	if destIdx < 0 {
		return nil, errors.NewNotFound(identifierOf(input.Destination))
	}
	source, dest := list[sourceIdx], list[destIdx]
	if !sitelist.IsMoveAllowed(list, source, dest) {
		return nil, errors.NewMoveNotAllowed(source.FolderID, dest.FolderID)
	}

	updated := sitelist.Move(list, sourceDetail, destDetail,
		input.Prepend, input.DestinationIsParent, input.DisallowReparent)
	if err := saveList(database, updated); err != nil {
		return nil, err
	}

	return &MoveSiteOutput{Moved: true, Count: len(updated)}, nil
}
