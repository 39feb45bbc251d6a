package ops

import (
	"database/sql"
	stderrors "errors"

	"github.com/pcadley/satchel/internal/db"
	"github.com/pcadley/satchel/internal/errors"
)

// SnapshotCreateInput contains parameters for the SnapshotCreate operation.
type SnapshotCreateInput struct {
	Label string `json:"label,omitempty"`
}

// SnapshotCreateOutput contains the result of the SnapshotCreate operation.
type SnapshotCreateOutput struct {
	Snapshot db.Snapshot `json:"snapshot"`
}

// SnapshotCreate stores a point-in-time copy of the current site list.
func SnapshotCreate(database *sql.DB, input SnapshotCreateInput) (*SnapshotCreateOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}
	snap, err := db.CreateSnapshot(database, input.Label, list)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return &SnapshotCreateOutput{Snapshot: *snap}, nil
}

// SnapshotListInput contains parameters for the SnapshotList operation.
type SnapshotListInput struct {
	Limit int `json:"limit,omitempty"`
}

// SnapshotListOutput contains the result of the SnapshotList operation.
type SnapshotListOutput struct {
	Snapshots []db.Snapshot `json:"snapshots"`
}

// SnapshotList returns stored snapshots, newest first.
func SnapshotList(database *sql.DB, input SnapshotListInput) (*SnapshotListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	if limit > MaxSnapshotLimit {
		limit = MaxSnapshotLimit
	}
	snaps, err := db.ListSnapshots(database, limit)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return &SnapshotListOutput{Snapshots: snaps}, nil
}

// SnapshotRestoreInput contains parameters for the SnapshotRestore
// operation.
type SnapshotRestoreInput struct {
	ID string `json:"id"`
}

// SnapshotRestoreOutput contains the result of the SnapshotRestore
// operation.
type SnapshotRestoreOutput struct {
	Restored bool `json:"restored"`
	Count    int  `json:"count"`
}

// SnapshotRestore replaces the current site list with a stored snapshot.
func SnapshotRestore(database *sql.DB, input SnapshotRestoreInput) (*SnapshotRestoreOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	list, err := db.GetSnapshot(database, input.ID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewNotFound("snapshot " + input.ID)
		}
		return nil, errors.NewInternal(err)
	}

	if err := saveList(database, list); err != nil {
		return nil, err
	}
	return &SnapshotRestoreOutput{Restored: true, Count: len(list)}, nil
}
