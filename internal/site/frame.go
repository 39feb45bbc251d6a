package site

// Frame is the read-only view of a browser tab that a site record can be
// derived from. It is implemented outside this package.
type Frame interface {
	Location() string
	PinnedLocation() string
	Title() string
	PartitionNumber() int
	Icon() string
	ThemeColor() string
	ComputedThemeColor() string
}

// FrameView is the minimal projection of a record handed back to the
// viewing layer when a site is opened.
type FrameView struct {
	Location        string `json:"location"`
	PartitionNumber int    `json:"partitionNumber"`
}

// FrameView projects the record for the viewing layer.
func (s Site) FrameView() FrameView {
	return FrameView{Location: s.Location, PartitionNumber: s.PartitionNumber}
}

// DetailFromFrame derives a partial site record from a frame. For pinned
// sites the pinned location wins over the frame's current location, and the
// computed theme color fills in when the declared one is absent.
func DetailFromFrame(f Frame, tag Tag) Detail {
	location := f.Location()
	if tag == TagPinned && f.PinnedLocation() != "" {
		location = f.PinnedLocation()
	}
	theme := f.ThemeColor()
	if theme == "" {
		theme = f.ComputedThemeColor()
	}

	d := Detail{
		Location:   location,
		Title:      f.Title(),
		Favicon:    f.Icon(),
		ThemeColor: theme,
	}
	if tag != "" {
		d.Tags = []Tag{tag}
	}
	partition := f.PartitionNumber()
	d.PartitionNumber = &partition
	return d
}
