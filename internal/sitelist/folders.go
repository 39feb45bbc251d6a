package sitelist

import "github.com/pcadley/satchel/internal/site"

// FolderEntry is one row of the flattened folder listing.
type FolderEntry struct {
	FolderID       int    `json:"folderId"`
	ParentFolderID int    `json:"parentFolderId"`
	Label          string `json:"label"`
}

// Folders enumerates the folder tree depth first, parents before children
// and siblings in list order, building " / "-joined label paths. The folder
// with excludeFolderID (and its subtree) is skipped; pass 0 to list
// everything.
func Folders(l List, excludeFolderID int) []FolderEntry {
	return foldersUnder(l, excludeFolderID, 0, "", 0)
}

func foldersUnder(l List, exclude, parentID int, prefix string, depth int) []FolderEntry {
	if depth > maxTreeDepth {
		return nil
	}

	entries := make([]FolderEntry, 0)
	for _, s := range l {
		if !s.HasTag(site.TagBookmarkFolder) || s.FolderID == 0 {
			continue
		}
		if s.ParentFolderID != parentID || s.FolderID == exclude {
			continue
		}
		label := s.DisplayTitle()
		if prefix != "" {
			label = prefix + " / " + label
		}
		entries = append(entries, FolderEntry{
			FolderID:       s.FolderID,
			ParentFolderID: s.ParentFolderID,
			Label:          label,
		})
		entries = append(entries, foldersUnder(l, exclude, s.FolderID, label, depth+1)...)
	}
	return entries
}
