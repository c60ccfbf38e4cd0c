// Package cards renders catalog items into per-mode scripts.
// Every renderer is deterministic for a given item; the letter reads the
// current date from an injectable clock.
package cards

import "strings"

// SpanKind classifies a run of card text.
type SpanKind string

const (
	SpanPlain    SpanKind = "plain"
	SpanEmphasis SpanKind = "emphasis"
	SpanLink     SpanKind = "link"
)

// Span is a run of text. Href is set only for links.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`
	Href string   `json:"href,omitempty"`
}

// Block is a labelled paragraph of spans.
type Block struct {
	Label string `json:"label,omitempty"`
	Spans []Span `json:"spans"`
}

// Card is the rendered form of one item in one mode. Copy holds the
// clipboard text and is empty when the mode has no copy affordance.
type Card struct {
	Mode     Mode    `json:"mode"`
	Topic    string  `json:"topic,omitempty"`
	Index    int     `json:"index"`
	Blocks   []Block `json:"blocks"`
	Copy     string  `json:"copy,omitempty"`
	Copyable bool    `json:"copyable"`
}

// Text flattens every block, prefixing labelled blocks with "[label]".
func (c Card) Text() string {
	return flatten(c.Blocks)
}

// Text concatenates the span texts of the block.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func flatten(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Label != "" {
			parts = append(parts, "["+b.Label+"]\n"+b.Text())
			continue
		}
		parts = append(parts, b.Text())
	}
	return strings.Join(parts, "\n\n")
}

func plain(text string) Span {
	return Span{Kind: SpanPlain, Text: text}
}

func link(text, href string) Span {
	return Span{Kind: SpanLink, Text: text, Href: href}
}
