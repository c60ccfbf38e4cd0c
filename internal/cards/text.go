package cards

import "github.com/JaimeStill/discourse/internal/catalog"

// TextMessage renders the text-message bubble. Copy equals the bubble
// text without link markup.
func (f *Formatter) TextMessage(item catalog.Item) Card {
	question := StripEmphasis(item.Question)

	body := Block{Spans: []Span{
		plain(item.Title + "\n\n\"" + question + "\"\n\n이 점에 대해 성경 "),
		link(item.Verse, f.links.Scripture(item.Verse)),
		plain("에서는 이렇게 알려줍니다.\n\n\"" + item.Truth + "\"\n\n" + item.Closing + "\n\n더 많은 정보는 "),
		link(f.links.SiteLabel, f.links.SiteURL),
		plain(" 를 방문해 보세요."),
	}}

	return Card{
		Mode:     ModeText,
		Blocks:   []Block{body},
		Copy:     body.Text(),
		Copyable: true,
	}
}
