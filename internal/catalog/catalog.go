// Package catalog holds the compiled-in table of outreach topics.
// The table is decoded once from an embedded YAML document and never
// mutated afterwards; all accessors hand out copies.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed topics.yaml
var topicsYAML []byte

// Item is a single pre-authored script entry within a topic.
// Question may wrap its core phrase in a pair of ** markers.
type Item struct {
	Question string `yaml:"question" json:"question"`
	Verse    string `yaml:"verse" json:"verse"`
	Truth    string `yaml:"truth" json:"truth"`
	Revisit  string `yaml:"revisit" json:"revisit"`
	Title    string `yaml:"title" json:"title"`
	Closing  string `yaml:"closing" json:"closing"`
}

// Topic groups an ordered list of items under a display name.
type Topic struct {
	Name  string `yaml:"name" json:"name"`
	Icon  string `yaml:"icon" json:"icon"`
	Items []Item `yaml:"items" json:"items"`
}

// Summary describes a topic without its items.
type Summary struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type document struct {
	Topics []Topic `yaml:"topics"`
}

// Catalog is an immutable lookup from topic name to its items.
type Catalog struct {
	order  []string
	topics map[string]Topic
}

// Load decodes the embedded topic table.
func Load() (*Catalog, error) {
	return Parse(topicsYAML)
}

// Parse decodes a topic table from YAML. Topic order follows the document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode topics: %w", err)
	}
	if len(doc.Topics) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		order:  make([]string, 0, len(doc.Topics)),
		topics: make(map[string]Topic, len(doc.Topics)),
	}

	for _, t := range doc.Topics {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: topic without name", ErrInvalidTopic)
		}
		if _, dup := c.topics[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate topic %q", ErrInvalidTopic, t.Name)
		}
		c.order = append(c.order, t.Name)
		c.topics[t.Name] = t
	}

	return c, nil
}

// Names returns topic names in catalog order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// Default returns the first topic name, used when no topic is selected.
func (c *Catalog) Default() string {
	return c.order[0]
}

// Has reports whether the named topic exists.
func (c *Catalog) Has(name string) bool {
	_, ok := c.topics[name]
	return ok
}

// Topics returns a summary of every topic in catalog order.
func (c *Catalog) Topics() []Summary {
	out := make([]Summary, 0, len(c.order))
	for _, name := range c.order {
		t := c.topics[name]
		out = append(out, Summary{Name: t.Name, Icon: t.Icon, Count: len(t.Items)})
	}
	return out
}

// Topic returns the named topic with a copy of its items.
func (c *Catalog) Topic(name string) (Topic, error) {
	t, ok := c.topics[name]
	if !ok {
		return Topic{}, fmt.Errorf("%w: %s", ErrTopicNotFound, name)
	}
	t.Items = slices.Clone(t.Items)
	return t, nil
}

// Items returns a copy of the items for the named topic.
func (c *Catalog) Items(name string) ([]Item, error) {
	t, err := c.Topic(name)
	if err != nil {
		return nil, err
	}
	return t.Items, nil
}

// Item returns a single item by topic name and zero-based index.
func (c *Catalog) Item(name string, index int) (Item, error) {
	t, ok := c.topics[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrTopicNotFound, name)
	}
	if index < 0 || index >= len(t.Items) {
		return Item{}, fmt.Errorf("%w: %s[%d]", ErrItemNotFound, name, index)
	}
	return t.Items[index], nil
}
