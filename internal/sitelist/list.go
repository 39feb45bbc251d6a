// Package sitelist implements the ordered site collection: a flat sequence
// of site records that also encodes the bookmark folder tree through
// parent-folder back-references.
//
// Every operation is a pure function from a list to a new list. Inputs are
// never mutated, so callers may hold on to earlier lists as snapshots.
package sitelist

import "github.com/pcadley/satchel/internal/site"

// List is an ordered sequence of site records. Order is display order.
type List []site.Site

// maxTreeDepth caps recursion over the folder tree. The move-time cycle
// guard keeps the tree acyclic, so any walk deeper than this indicates a
// corrupted list rather than a real hierarchy.
const maxTreeDepth = 128

// FindIndex locates the record matching d under the identity rule selected
// by tagContext: folders match by folder id, everything else by
// (location, partition). Returns -1 when no record matches.
func FindIndex(l List, d site.Detail, tagContext site.Tag) int {
	if tagContext == site.TagBookmarkFolder {
		if d.FolderID == 0 {
			return -1
		}
		for i, s := range l {
			if s.FolderID == d.FolderID {
				return i
			}
		}
		return -1
	}

	if d.Location == "" {
		return -1
	}
	partition := d.Partition()
	for i, s := range l {
		if s.IsFolder() {
			continue
		}
		if s.Location == d.Location && s.PartitionNumber == partition {
			return i
		}
	}
	return -1
}

// IsBookmarked reports whether the record addressed by d exists and carries
// the bookmark tag.
func IsBookmarked(l List, d site.Detail) bool {
	idx := FindIndex(l, d, site.TagBookmark)
	return idx >= 0 && l[idx].HasTag(site.TagBookmark)
}

// NextFolderID returns one more than the highest folder id in the list, or
// 1 when the list has no folders yet.
func NextFolderID(l List) int {
	max := 0
	for _, s := range l {
		if s.FolderID > max {
			max = s.FolderID
		}
	}
	return max + 1
}

// folderByID returns the folder record with the given id, or nil.
func folderByID(l List, folderID int) *site.Site {
	if folderID == 0 {
		return nil
	}
	for i := range l {
		if l[i].FolderID == folderID {
			return &l[i]
		}
	}
	return nil
}

// clone returns a shallow copy of the list. Record values are copied;
// operations that change a record's tag set must build a fresh tag slice.
func clone(l List) List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// firstTagOf returns the identity context for a partial: its leading tag.
func firstTagOf(d site.Detail) site.Tag {
	tag, _ := d.FirstTag()
	return tag
}
