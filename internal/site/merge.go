package site

// Merge computes the record that results from layering the partial d over
// an existing record. old may be nil for a brand new record. tag, when
// non-empty, is added to the record's tag set. folderID, when non-zero, is
// assigned to the record. now supplies the wall clock for history entries
// without an explicit access time.
//
// Bookmark- and folder-tagged merges default the access time to 0 rather
// than "now" so a just-created bookmark never outranks real history in the
// recents ordering.
func Merge(old *Site, d Detail, tag Tag, folderID int, now Clock) Site {
	var s Site

	s.Tags = mergeTags(old, tag)

	custom := ""
	if d.CustomTitle != nil {
		custom = *d.CustomTitle
	} else if old != nil {
		custom = old.CustomTitle
	}
	s.CustomTitle = custom

	var last int64
	switch {
	case tag == TagBookmark || tag == TagBookmarkFolder:
		if d.LastAccessed != nil {
			last = *d.LastAccessed
		}
	case d.LastAccessed != nil:
		last = *d.LastAccessed
	default:
		last = now()
	}
	s.LastAccessed = &last

	if d.Location != "" {
		s.Location = d.Location
	}
	if d.Title != "" {
		s.Title = d.Title
	} else if old != nil {
		s.Title = old.Title
	}
	if folderID != 0 {
		s.FolderID = folderID
	}

	if d.ParentFolderID != nil {
		s.ParentFolderID = *d.ParentFolderID
	} else if old != nil {
		s.ParentFolderID = old.ParentFolderID
	}

	if d.PartitionNumber != nil {
		s.PartitionNumber = *d.PartitionNumber
	} else if old != nil {
		s.PartitionNumber = old.PartitionNumber
	}

	if d.Favicon != "" {
		s.Favicon = d.Favicon
	} else if old != nil {
		s.Favicon = old.Favicon
	}
	if d.ThemeColor != "" {
		s.ThemeColor = d.ThemeColor
	} else if old != nil {
		s.ThemeColor = old.ThemeColor
	}

	// Visit counting only applies to plain history entries.
	if len(s.Tags) == 0 {
		count := d.Count
		if old != nil {
			count = old.Count
		}
		s.Count = count + 1
	}

	return s
}

// mergeTags returns the old record's tags plus tag, deduplicated. The
// result is always a fresh slice so merged records never alias their
// predecessor's tag set.
func mergeTags(old *Site, tag Tag) []Tag {
	var tags []Tag
	if old != nil {
		tags = append(tags, old.Tags...)
	}
	if tag == "" {
		return tags
	}
	for _, have := range tags {
		if have == tag {
			return tags
		}
	}
	return append(tags, tag)
}
