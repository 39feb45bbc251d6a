package sitelist

import "github.com/pcadley/satchel/internal/site"

// Add inserts a new record or updates the existing one with the same
// identity, returning the new list. tag defaults to the partial's first tag
// when empty. original, when non-nil, addresses the existing record instead
// of d itself, which supports rename-style moves where the identity fields
// change.
//
// New folders get special treatment: an explicitly supplied folder id (the
// import scenario) evicts any other folder sharing the same
// (parent, custom title) pair, while a missing folder id is assigned from
// NextFolderID.
func Add(l List, d site.Detail, tag site.Tag, original *site.Detail, now site.Clock) List {
	if tag == "" {
		tag = firstTagOf(d)
	}

	lookup := d
	if original != nil {
		lookup = *original
	}
	idx := FindIndex(l, lookup, tag)

	out := l
	folderID := d.FolderID
	if tag == site.TagBookmarkFolder && idx < 0 {
		if folderID != 0 {
			out = removeDuplicateFolder(out, d)
		} else {
			folderID = NextFolderID(out)
		}
	}

	var old *site.Site
	if idx >= 0 {
		existing := out[idx]
		old = &existing
	}
	merged := site.Merge(old, d, tag, folderID, now)

	res := clone(out)
	if idx < 0 {
		return append(res, merged)
	}
	res[idx] = merged
	return res
}

// removeDuplicateFolder drops any folder that shares d's (parent, custom
// title) pair but has a different folder id, keeping folder names unique
// within a parent when folders arrive with preassigned ids.
func removeDuplicateFolder(l List, d site.Detail) List {
	title := ""
	if d.CustomTitle != nil {
		title = *d.CustomTitle
	}
	parent := d.Parent()

	out := make(List, 0, len(l))
	for _, s := range l {
		if s.IsFolder() && s.FolderID != d.FolderID &&
			s.ParentFolderID == parent && s.CustomTitle == title {
			continue
		}
		out = append(out, s)
	}
	return out
}
