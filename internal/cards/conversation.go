package cards

import "github.com/JaimeStill/discourse/internal/catalog"

// Conversation renders the face-to-face card. The question keeps its
// emphasised segments. This mode has no copy text.
func (f *Formatter) Conversation(item catalog.Item) Card {
	question := append([]Span{plain(`"`)}, Segments(item.Question)...)
	question = append(question, plain(`"`))

	return Card{
		Mode: ModeConversation,
		Blocks: []Block{
			{Label: "성구", Spans: []Span{link(item.Verse, f.links.Scripture(item.Verse))}},
			{Label: "질문", Spans: question},
			{Label: "진리", Spans: []Span{plain(item.Truth)}},
			{Label: "재방문 질문", Spans: []Span{plain(`"` + item.Revisit + `"`)}},
		},
	}
}
