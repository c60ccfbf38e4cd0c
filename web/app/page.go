package app

import (
	"net/url"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/catalog"
	"github.com/JaimeStill/discourse/internal/composer"
	"github.com/JaimeStill/discourse/internal/flow"
)

const (
	tabProposal = "proposal"
	tabPolish   = "polish"
)

func parseTab(s string) string {
	if s == tabPolish {
		return tabPolish
	}
	return tabProposal
}

// page is the data rendered by the index view.
type page struct {
	basePath string

	Tab    string
	Mode   cards.Mode
	Modes  []cards.ModeInfo
	Topic  string
	Topics []catalog.Summary
	Cards  []cards.Card
	Styles []composer.StyleInfo
	Style  composer.Style

	Proposal flow.Snapshot[composer.ProposalResult]
	Polish   flow.Snapshot[composer.PolishResult]
}

// Pending reports whether either assistant flow is awaiting a result.
func (p page) Pending() bool {
	return p.Proposal.Pending() || p.Polish.Pending()
}

// TopicHref links to the page with topic selected.
func (p page) TopicHref(topic string) string {
	return p.href(p.Tab, p.Mode, topic)
}

// ModeHref links to the page with mode selected.
func (p page) ModeHref(mode cards.Mode) string {
	return p.href(p.Tab, mode, p.Topic)
}

// TabHref links to the page with the assistant tab selected.
func (p page) TabHref(tab string) string {
	return p.href(tab, p.Mode, p.Topic)
}

func (p page) href(tab string, mode cards.Mode, topic string) string {
	return pageURL(p.basePath, tab, string(mode), topic)
}

func pageURL(basePath, tab, mode, topic string) string {
	q := url.Values{}
	if topic != "" {
		q.Set("topic", topic)
	}
	if mode != "" {
		q.Set("mode", mode)
	}
	q.Set("tab", parseTab(tab))
	return basePath + "/?" + q.Encode()
}
