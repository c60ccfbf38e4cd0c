package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// EmphasisMarker delimits the core phrase of a question.
const EmphasisMarker = "**"

// Validate reports authoring defects in the table: empty fields and
// unmatched emphasis markers. Defects are not fatal; formatting of a
// defective item still succeeds with the markers left visible.
func (c *Catalog) Validate() error {
	var errs []error
	for _, name := range c.order {
		for i, item := range c.topics[name].Items {
			if err := item.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s[%d]: %w", name, i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Validate checks that every field is populated and that emphasis
// markers in the question come in pairs.
func (i Item) Validate() error {
	var errs []error

	fields := []struct {
		name  string
		value string
	}{
		{"question", i.Question},
		{"verse", i.Verse},
		{"truth", i.Truth},
		{"revisit", i.Revisit},
		{"title", i.Title},
		{"closing", i.Closing},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyField, f.name))
		}
	}

	if strings.Count(i.Question, EmphasisMarker)%2 != 0 {
		errs = append(errs, ErrUnmatchedEmphasis)
	}

	return errors.Join(errs...)
}
