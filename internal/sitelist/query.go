package sitelist

import (
	"sort"

	"github.com/pcadley/satchel/internal/site"
)

// Recents keeps every tagged record unchanged and reduces the untagged
// history entries to the max most recently accessed ones, most recent
// first, concatenated after the tagged records. A negative max means no
// cap.
func Recents(l List, max int) List {
	tagged := make(List, 0, len(l))
	history := make(List, 0, len(l))
	for _, s := range l {
		if len(s.Tags) > 0 {
			tagged = append(tagged, s)
		} else {
			history = append(history, s)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return accessedAt(history[i]) > accessedAt(history[j])
	})
	if max >= 0 && len(history) > max {
		history = history[:max]
	}

	return append(tagged, history...)
}

// Bookmarks returns only the records tagged as bookmarks or folders.
func Bookmarks(l List) List {
	out := make(List, 0, len(l))
	for _, s := range l {
		if s.HasTag(site.TagBookmark) || s.HasTag(site.TagBookmarkFolder) {
			out = append(out, s)
		}
	}
	return out
}

// ChildrenOf returns the records living directly inside the given folder.
// A record without a folder id cannot have children, so the list is
// returned unfiltered.
func ChildrenOf(l List, folder site.Site) List {
	if folder.FolderID == 0 {
		return l
	}
	out := make(List, 0)
	for _, s := range l {
		if s.ParentFolderID == folder.FolderID {
			out = append(out, s)
		}
	}
	return out
}

// ClearHistory drops every untagged record and clears the access time on
// the tagged ones, returning the new list.
func ClearHistory(l List) List {
	out := make(List, 0, len(l))
	for _, s := range l {
		if len(s.Tags) == 0 {
			continue
		}
		s.LastAccessed = nil
		out = append(out, s)
	}
	return out
}

// accessedAt treats a cleared access time as the epoch for ordering.
func accessedAt(s site.Site) int64 {
	if s.LastAccessed == nil {
		return 0
	}
	return *s.LastAccessed
}
