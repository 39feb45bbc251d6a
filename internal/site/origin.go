package site

import (
	"fmt"
	"net/url"
	"strings"
)

// fileOrigin is the single origin shared by all file:// URLs.
const fileOrigin = "file:///"

// Origin extracts the scheme://host[:port] origin of a location. All
// file:// URLs collapse to the constant file origin. Locations without
// both a scheme and a host have no origin.
func Origin(location string) (string, bool) {
	if location == "" {
		return "", false
	}
	if strings.HasPrefix(location, "file://") {
		return fileOrigin, true
	}
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

// Normalizer converts a raw location into its canonical form. Callers fall
// back to the raw string when normalization fails.
type Normalizer func(string) (string, error)

// NormalizeLocation is the default Normalizer: it lowercases the scheme and
// host, strips default ports and fragments, and leaves the rest of the URL
// untouched.
func NormalizeLocation(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("location %q has no origin", raw)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}
	u.Fragment = ""
	return u.String(), nil
}
