package catalog

import (
	"fmt"
	"strings"
)

// Match is an item found by Search, addressed by topic and index.
type Match struct {
	Topic string `json:"topic"`
	Index int    `json:"index"`
	Item  Item   `json:"item"`
}

// Search returns the items whose text contains term, ignoring case and
// emphasis markers, in catalog order. An empty term matches every item.
// A non-empty topic restricts the search to that topic.
func (c *Catalog) Search(term, topic string) ([]Match, error) {
	names := c.order
	if topic != "" {
		if !c.Has(topic) {
			return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
		}
		names = []string{topic}
	}

	needle := strings.ToLower(strings.TrimSpace(term))

	var out []Match
	for _, name := range names {
		for i, item := range c.topics[name].Items {
			if needle == "" || strings.Contains(item.haystack(), needle) {
				out = append(out, Match{Topic: name, Index: i, Item: item})
			}
		}
	}
	return out, nil
}

func (i Item) haystack() string {
	fields := []string{
		strings.ReplaceAll(i.Question, "**", ""),
		i.Verse,
		i.Truth,
		i.Revisit,
		i.Title,
		i.Closing,
	}
	return strings.ToLower(strings.Join(fields, "\n"))
}
