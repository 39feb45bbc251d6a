package ops

import (
	"database/sql"

	"github.com/pcadley/satchel/internal/sitelist"
)

// FolderTreeInput contains parameters for the FolderTree operation.
type FolderTreeInput struct {
	// ExcludeFolderID skips one folder (and its subtree) from the listing,
	// used when picking a move target that cannot be the moved folder
	// itself.
	ExcludeFolderID int `json:"exclude_folder_id,omitempty"`
}

// FolderTreeOutput contains the result of the FolderTree operation.
type FolderTreeOutput struct {
	Folders []sitelist.FolderEntry `json:"folders"`
}

// FolderTree returns the flattened folder hierarchy with label paths.
func FolderTree(database *sql.DB, input FolderTreeInput) (*FolderTreeOutput, error) {
	list, err := loadList(database)
	if err != nil {
		return nil, err
	}
	return &FolderTreeOutput{Folders: sitelist.Folders(list, input.ExcludeFolderID)}, nil
}
