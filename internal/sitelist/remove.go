package sitelist

import "github.com/pcadley/satchel/internal/site"

// Remove removes the record addressed by d, returning the new list. When
// the target is a folder, every descendant is first removed as if each of
// its tags were removed individually.
//
// The surviving shape of the target depends on what was asked:
//   - no tag requested and the record has none: the record is deleted;
//   - no tag requested but the record is tagged: only its access time is
//     cleared (history wiped, bookmark identity kept);
//   - a tag requested: that tag is stripped, the record returns to the top
//     level, and its custom title is cleared.
//
// A lookup miss returns the list unchanged.
func Remove(l List, d site.Detail, tag site.Tag) List {
	return remove(l, d, tag, 0)
}

func remove(l List, d site.Detail, tag site.Tag, depth int) List {
	if depth > maxTreeDepth {
		return l
	}

	ctx := tag
	if ctx == "" {
		ctx = firstTagOf(d)
	}
	idx := FindIndex(l, d, ctx)
	if idx < 0 {
		return l
	}
	target := l[idx]

	out := l
	if target.IsFolder() {
		out = removeChildren(out, target.FolderID, depth)
		// Cascade may have shifted the folder's position.
		idx = FindIndex(out, d, ctx)
		if idx < 0 {
			return out
		}
		target = out[idx]
	}

	res := clone(out)
	switch {
	case tag == "" && len(target.Tags) == 0:
		return append(res[:idx], res[idx+1:]...)
	case tag == "":
		target.LastAccessed = nil
		res[idx] = target
	default:
		target.Tags = withoutTag(target.Tags, tag)
		target.ParentFolderID = 0
		target.CustomTitle = ""
		res[idx] = target
	}
	return res
}

// removeChildren removes every record parented to folderID, one tag at a
// time, so tagged children go through the same strip/clear branches as a
// direct removal would.
func removeChildren(l List, folderID int, depth int) List {
	children := make([]site.Site, 0)
	for _, s := range l {
		if s.ParentFolderID == folderID {
			children = append(children, s)
		}
	}

	out := l
	for _, child := range children {
		d := child.Detail()
		if len(child.Tags) == 0 {
			out = remove(out, d, "", depth+1)
			continue
		}
		for _, t := range child.Tags {
			out = remove(out, d, t, depth+1)
		}
	}
	return out
}

// withoutTag returns a fresh tag slice with tag removed.
func withoutTag(tags []site.Tag, tag site.Tag) []site.Tag {
	out := make([]site.Tag, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}
