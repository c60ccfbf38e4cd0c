package cards

import (
	"fmt"
	"time"

	"github.com/JaimeStill/discourse/internal/catalog"
)

// Formatter renders catalog items. The zero value is not usable; call New.
type Formatter struct {
	links Links
	now   func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the clock the letter reads its date from.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// WithLinks overrides the library and site addresses.
func WithLinks(l Links) Option {
	return func(f *Formatter) {
		f.links = l
	}
}

// New creates a Formatter using the default links and the system clock.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		links: DefaultLinks(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Links returns the addresses the formatter embeds.
func (f *Formatter) Links() Links {
	return f.links
}

// Format renders a single item in the given mode.
func (f *Formatter) Format(mode Mode, item catalog.Item) (Card, error) {
	switch mode {
	case ModeConversation:
		return f.Conversation(item), nil
	case ModePhone:
		return f.PhoneScript(item), nil
	case ModeText:
		return f.TextMessage(item), nil
	case ModeLetter:
		return f.Letter(item), nil
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// FormatTopic renders every item of a topic in the given mode.
func (f *Formatter) FormatTopic(mode Mode, c *catalog.Catalog, topic string) ([]Card, error) {
	items, err := c.Items(topic)
	if err != nil {
		return nil, err
	}

	out := make([]Card, 0, len(items))
	for i, item := range items {
		card, err := f.Format(mode, item)
		if err != nil {
			return nil, err
		}
		card.Topic = topic
		card.Index = i
		out = append(out, card)
	}
	return out, nil
}

// FormatItem renders one item of a topic, addressed by index.
func (f *Formatter) FormatItem(mode Mode, c *catalog.Catalog, topic string, index int) (Card, error) {
	item, err := c.Item(topic, index)
	if err != nil {
		return Card{}, err
	}
	card, err := f.Format(mode, item)
	if err != nil {
		return Card{}, err
	}
	card.Topic = topic
	card.Index = index
	return card, nil
}
