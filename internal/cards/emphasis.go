package cards

import (
	"regexp"
	"strings"

	"github.com/JaimeStill/discourse/internal/catalog"
)

var emphasisPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Segments splits a question on emphasis markers. Odd-indexed segments
// are emphasised. Empty segments are kept so indexes stay aligned.
func Segments(question string) []Span {
	parts := strings.Split(question, catalog.EmphasisMarker)
	spans := make([]Span, len(parts))
	for i, p := range parts {
		kind := SpanPlain
		if i%2 == 1 {
			kind = SpanEmphasis
		}
		spans[i] = Span{Kind: kind, Text: p}
	}
	return spans
}

// StripEmphasis removes paired markers and keeps the inner text.
// An unmatched marker is left in place.
func StripEmphasis(question string) string {
	return emphasisPattern.ReplaceAllString(question, "$1")
}

// Join rejoins segments, restoring markers around emphasised spans.
func Join(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		if s.Kind == SpanEmphasis {
			sb.WriteString(catalog.EmphasisMarker + s.Text + catalog.EmphasisMarker)
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}
