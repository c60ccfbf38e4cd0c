package catalog_test

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/JaimeStill/discourse/internal/catalog"
)

func TestLoad(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("embedded catalog has defects: %v", err)
	}

	names := c.Names()
	if len(names) == 0 {
		t.Fatal("Names: got empty, want topics")
	}
	if c.Default() != names[0] {
		t.Errorf("Default: got %q, want %q", c.Default(), names[0])
	}

	for _, s := range c.Topics() {
		if s.Count == 0 {
			t.Errorf("topic %q has no items", s.Name)
		}
		if s.Icon == "" {
			t.Errorf("topic %q has no icon", s.Name)
		}
	}
}

const sample = `
topics:
  - name: alpha
    icon: a
    items:
      - question: q1 **core**
        verse: v1
        truth: t1
        revisit: r1
        title: ti1
        closing: c1
  - name: beta
    icon: b
    items:
      - question: q2 **broken
        verse: v2
        truth: ""
        revisit: r2
        title: ti2
        closing: c2
`

func TestParse(t *testing.T) {
	c, err := catalog.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	t.Run("order preserved", func(t *testing.T) {
		names := c.Names()
		if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
			t.Errorf("Names: got %v, want [alpha beta]", names)
		}
	})

	t.Run("item lookup", func(t *testing.T) {
		item, err := c.Item("alpha", 0)
		if err != nil {
			t.Fatalf("Item error: %v", err)
		}
		if item.Verse != "v1" {
			t.Errorf("Verse: got %q, want v1", item.Verse)
		}
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := c.Items("gamma")
		if !errors.Is(err, catalog.ErrTopicNotFound) {
			t.Errorf("error = %v, want ErrTopicNotFound", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := c.Item("alpha", 3)
		if !errors.Is(err, catalog.ErrItemNotFound) {
			t.Errorf("error = %v, want ErrItemNotFound", err)
		}
	})

	t.Run("returned items are copies", func(t *testing.T) {
		items, _ := c.Items("alpha")
		items[0].Verse = "mutated"
		again, _ := c.Item("alpha", 0)
		if again.Verse != "v1" {
			t.Errorf("catalog mutated through returned slice: %q", again.Verse)
		}
	})

	t.Run("validate reports defects", func(t *testing.T) {
		err := c.Validate()
		if !errors.Is(err, catalog.ErrEmptyField) {
			t.Errorf("error = %v, want ErrEmptyField", err)
		}
		if !errors.Is(err, catalog.ErrUnmatchedEmphasis) {
			t.Errorf("error = %v, want ErrUnmatchedEmphasis", err)
		}
	})
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty document", "topics: []", catalog.ErrEmpty},
		{"missing name", "topics:\n  - icon: x\n", catalog.ErrInvalidTopic},
		{"duplicate name", "topics:\n  - name: a\n  - name: a\n", catalog.ErrInvalidTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	c, err := catalog.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	tests := []struct {
		name  string
		term  string
		topic string
		want  []string
	}{
		{"empty term matches all", "", "", []string{"alpha/0", "beta/0"}},
		{"case insensitive", "V2", "", []string{"beta/0"}},
		{"emphasis ignored", "q1 core", "", []string{"alpha/0"}},
		{"closing field", "c1", "", []string{"alpha/0"}},
		{"restricted to topic", "", "beta", []string{"beta/0"}},
		{"no match", "zzz", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := c.Search(tt.term, tt.topic)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			var got []string
			for _, m := range matches {
				got = append(got, m.Topic+"/"+strconv.Itoa(m.Index))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("matches: got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := c.Search("", "gamma"); !errors.Is(err, catalog.ErrTopicNotFound) {
		t.Errorf("unknown topic error = %v, want ErrTopicNotFound", err)
	}
}
