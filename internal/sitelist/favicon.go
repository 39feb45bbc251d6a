package sitelist

import "github.com/pcadley/satchel/internal/site"

// UpdateFavicon sets the favicon on every non-folder record whose
// normalized location matches the normalized input location. Normalization
// failures fall back to comparing raw strings. When nothing matches the
// original list is returned.
func UpdateFavicon(l List, location, favicon string, normalize site.Normalizer) List {
	if normalize == nil {
		normalize = site.NormalizeLocation
	}
	want := normalizeOrRaw(normalize, location)

	out := clone(l)
	changed := false
	for i, s := range out {
		if s.IsFolder() || s.Location == "" {
			continue
		}
		if normalizeOrRaw(normalize, s.Location) != want {
			continue
		}
		s.Favicon = favicon
		out[i] = s
		changed = true
	}
	if !changed {
		return l
	}
	return out
}

func normalizeOrRaw(normalize site.Normalizer, location string) string {
	normalized, err := normalize(location)
	if err != nil {
		return location
	}
	return normalized
}
