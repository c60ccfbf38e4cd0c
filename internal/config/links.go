package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/JaimeStill/discourse/internal/cards"
)

const (
	EnvLinksLibraryURL = "DISCOURSE_LINKS_LIBRARY_URL"
	EnvLinksSiteLabel  = "DISCOURSE_LINKS_SITE_LABEL"
	EnvLinksSiteURL    = "DISCOURSE_LINKS_SITE_URL"
)

// LinksConfig holds the scripture library and organisation site used when
// rendering cards.
type LinksConfig struct {
	LibraryURL string `toml:"library_url"`
	SiteLabel  string `toml:"site_label"`
	SiteURL    string `toml:"site_url"`
}

// Links converts the config to the card formatter's link set.
func (c *LinksConfig) Links() cards.Links {
	return cards.Links{
		LibraryURL: c.LibraryURL,
		SiteLabel:  c.SiteLabel,
		SiteURL:    c.SiteURL,
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LinksConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *LinksConfig) Merge(overlay *LinksConfig) {
	if overlay.LibraryURL != "" {
		c.LibraryURL = overlay.LibraryURL
	}
	if overlay.SiteLabel != "" {
		c.SiteLabel = overlay.SiteLabel
	}
	if overlay.SiteURL != "" {
		c.SiteURL = overlay.SiteURL
	}
}

func (c *LinksConfig) loadDefaults() {
	defaults := cards.DefaultLinks()
	if c.LibraryURL == "" {
		c.LibraryURL = defaults.LibraryURL
	}
	if c.SiteLabel == "" {
		c.SiteLabel = defaults.SiteLabel
	}
	if c.SiteURL == "" {
		c.SiteURL = defaults.SiteURL
	}
}

func (c *LinksConfig) loadEnv() {
	if v := os.Getenv(EnvLinksLibraryURL); v != "" {
		c.LibraryURL = v
	}
	if v := os.Getenv(EnvLinksSiteLabel); v != "" {
		c.SiteLabel = v
	}
	if v := os.Getenv(EnvLinksSiteURL); v != "" {
		c.SiteURL = v
	}
}

func (c *LinksConfig) validate() error {
	for name, raw := range map[string]string{"library_url": c.LibraryURL, "site_url": c.SiteURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	return nil
}
