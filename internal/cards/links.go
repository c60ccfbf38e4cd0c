package cards

import (
	"net/url"
	"strings"
)

const (
	DefaultLibraryURL = "https://wol.jw.org/ko/wol/l/r8/lp-ko"
	DefaultSiteLabel  = "jw.org/ko"
	DefaultSiteURL    = "https://www.jw.org/ko"
)

// Links holds the external addresses embedded in cards. They are only
// rendered, never fetched.
type Links struct {
	LibraryURL string
	SiteLabel  string
	SiteURL    string
}

// DefaultLinks returns the Korean library and site addresses.
func DefaultLinks() Links {
	return Links{
		LibraryURL: DefaultLibraryURL,
		SiteLabel:  DefaultSiteLabel,
		SiteURL:    DefaultSiteURL,
	}
}

// Scripture returns the library lookup URL for a verse reference.
func (l Links) Scripture(ref string) string {
	return l.LibraryURL + "?q=" + EscapeComponent(ref)
}

// EscapeComponent percent-encodes s for use as a query value, encoding
// spaces as %20 rather than '+'.
func EscapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
