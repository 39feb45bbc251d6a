package sitelist

import "github.com/pcadley/satchel/internal/site"

// IsMoveAllowed reports whether source may be moved relative to dest.
// Folder-to-folder moves are rejected when the source is its own
// destination or when the destination sits anywhere below the source,
// which would cycle the tree. All other moves are allowed.
func IsMoveAllowed(l List, source, dest site.Site) bool {
	if source.FolderID == 0 || dest.FolderID == 0 {
		return true
	}
	if source.FolderID == dest.FolderID {
		return false
	}

	// Walk ancestors of dest; seeing source means dest is a descendant.
	seen := make(map[int]bool)
	for parent := dest.ParentFolderID; parent != 0 && !seen[parent]; {
		if parent == source.FolderID {
			return false
		}
		seen[parent] = true
		folder := folderByID(l, parent)
		if folder == nil {
			break
		}
		parent = folder.ParentFolderID
	}
	return true
}

// Move splices the source record out of its position and reinserts it
// relative to the destination record, returning the new list.
//
// The insertion point is just before dest when prepend is set, just after
// it otherwise, or the end of the list when destinationIsParent forces an
// append-as-last-child. Unless disallowReparent is set, the moved record
// adopts the destination folder (when moving into one) or the destination's
// own parent. Disallowed or unresolvable moves return the list unchanged.
func Move(l List, sourceDetail, destDetail site.Detail, prepend, destinationIsParent, disallowReparent bool) List {
	sourceIdx := FindIndex(l, sourceDetail, firstTagOf(sourceDetail))
	destIdx := FindIndex(l, destDetail, firstTagOf(destDetail))
	if sourceIdx < 0 || destIdx < 0 {
		return l
	}

	source := l[sourceIdx]
	dest := l[destIdx]
	if !IsMoveAllowed(l, source, dest) {
		return l
	}

	newIdx := destIdx
	if !prepend {
		newIdx++
	}
	if destinationIsParent {
		// Appending as last child ignores prepend entirely.
		newIdx = len(l)
	}

	rest := make(List, 0, len(l))
	rest = append(rest, l[:sourceIdx]...)
	rest = append(rest, l[sourceIdx+1:]...)
	if sourceIdx < newIdx {
		newIdx--
	}

	moved := source
	if !disallowReparent {
		if destinationIsParent && dest.FolderID != moved.FolderID {
			moved.ParentFolderID = dest.FolderID
		} else {
			moved.ParentFolderID = dest.ParentFolderID
		}
	}

	res := make(List, 0, len(l))
	res = append(res, rest[:newIdx]...)
	res = append(res, moved)
	res = append(res, rest[newIdx:]...)
	return res
}
