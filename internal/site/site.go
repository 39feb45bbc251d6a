package site

import "fmt"

// Tag marks the role a site record plays in the collection.
// A record with no tags is a plain history entry.
type Tag string

const (
	TagBookmark       Tag = "bookmark"
	TagBookmarkFolder Tag = "bookmark-folder"
	TagPinned         Tag = "pinned"
)

// ParseTag converts a wire/CLI string into a Tag.
func ParseTag(s string) (Tag, error) {
	switch Tag(s) {
	case TagBookmark, TagBookmarkFolder, TagPinned:
		return Tag(s), nil
	case "":
		return "", nil
	}
	return "", fmt.Errorf("unknown tag %q", s)
}

// Kind is the closed set of record variants derived from a tag set.
type Kind int

const (
	KindHistory Kind = iota
	KindBookmark
	KindFolder
	KindPinned
)

// Clock supplies the current time in Unix milliseconds.
type Clock func() int64

// Site is one entry in the site list: a history entry, a bookmark, or a
// bookmark folder.
//
// Zero values stand in for absence: FolderID 0 means "not a folder",
// ParentFolderID 0 means the record sits at the top level (the bookmarks
// toolbar), PartitionNumber 0 is the default browsing partition. A nil
// LastAccessed means the record's history has been cleared while its
// identity was kept.
type Site struct {
	Location        string `json:"location,omitempty"`
	Title           string `json:"title,omitempty"`
	CustomTitle     string `json:"customTitle,omitempty"`
	Tags            []Tag  `json:"tags,omitempty"`
	LastAccessed    *int64 `json:"lastAccessedTime"`
	Count           int    `json:"count,omitempty"`
	FolderID        int    `json:"folderId,omitempty"`
	ParentFolderID  int    `json:"parentFolderId,omitempty"`
	PartitionNumber int    `json:"partitionNumber,omitempty"`
	Favicon         string `json:"favicon,omitempty"`
	ThemeColor      string `json:"themeColor,omitempty"`
}

// HasTag reports whether the record carries the given tag.
func (s Site) HasTag(t Tag) bool {
	for _, have := range s.Tags {
		if have == t {
			return true
		}
	}
	return false
}

// IsFolder reports whether the record is a bookmark folder.
func (s Site) IsFolder() bool {
	return s.HasTag(TagBookmarkFolder) || s.FolderID != 0
}

// Kind derives the record variant from its tag set.
func (s Site) Kind() Kind {
	switch {
	case s.HasTag(TagBookmarkFolder):
		return KindFolder
	case s.HasTag(TagBookmark):
		return KindBookmark
	case s.HasTag(TagPinned):
		return KindPinned
	}
	return KindHistory
}

// DisplayTitle returns the custom title when set, otherwise the page title.
func (s Site) DisplayTitle() string {
	if s.CustomTitle != "" {
		return s.CustomTitle
	}
	return s.Title
}

// Detail converts the record into the partial form used to address it in
// list operations.
func (s Site) Detail() Detail {
	d := Detail{
		Location: s.Location,
		Title:    s.Title,
		Tags:     s.Tags,
		FolderID: s.FolderID,
		Favicon:  s.Favicon,
	}
	if s.CustomTitle != "" {
		ct := s.CustomTitle
		d.CustomTitle = &ct
	}
	if s.LastAccessed != nil {
		la := *s.LastAccessed
		d.LastAccessed = &la
	}
	pf := s.ParentFolderID
	d.ParentFolderID = &pf
	pn := s.PartitionNumber
	d.PartitionNumber = &pn
	return d
}

// Detail is a partial site record used as operation input. Pointer fields
// distinguish "explicitly provided" from "absent", which the merge rules
// depend on.
type Detail struct {
	Location        string
	Title           string
	CustomTitle     *string
	Tags            []Tag
	LastAccessed    *int64
	Count           int
	FolderID        int
	ParentFolderID  *int
	PartitionNumber *int
	Favicon         string
	ThemeColor      string
}

// FirstTag returns the first tag on the partial, if any.
func (d Detail) FirstTag() (Tag, bool) {
	if len(d.Tags) == 0 {
		return "", false
	}
	return d.Tags[0], true
}

// Partition returns the partial's partition number, defaulting to 0.
func (d Detail) Partition() int {
	if d.PartitionNumber == nil {
		return 0
	}
	return *d.PartitionNumber
}

// Parent returns the partial's parent folder id, defaulting to top level.
func (d Detail) Parent() int {
	if d.ParentFolderID == nil {
		return 0
	}
	return *d.ParentFolderID
}

// IsEquivalent reports whether two records have the same identity: folders
// compare by folder id, everything else by (location, partition). A folder
// never equals a non-folder.
func IsEquivalent(a, b Site) bool {
	if a.IsFolder() != b.IsFolder() {
		return false
	}
	if a.IsFolder() {
		return a.FolderID == b.FolderID
	}
	return a.Location == b.Location && a.PartitionNumber == b.PartitionNumber
}
