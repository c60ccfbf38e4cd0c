package cards

import (
	"strings"

	"github.com/JaimeStill/discourse/internal/catalog"
)

// replacements soften a written question into spoken phrasing. Each is
// applied once, in order, to the first occurrence only.
var replacements = []struct {
	old string
	new string
}{
	{"혹시", ""},
	{"알고 계셨나요?", "어떻게 생각하시나요?"},
}

// Conversational rewrites a stripped question for the phone script.
func Conversational(question string) string {
	for _, r := range replacements {
		question = strings.Replace(question, r.old, r.new, 1)
	}
	return question
}

// PhoneScript renders the four-section phone script.
func (f *Formatter) PhoneScript(item catalog.Item) Card {
	question := Conversational(StripEmphasis(item.Question))

	blocks := []Block{
		{Label: "인사 및 소개", Spans: []Span{
			plain(`"안녕하세요, 선생님. 저는 지역에서 봉사하는 [이름]입니다."`),
		}},
		{Label: "질문", Spans: []Span{
			plain(`"다름이 아니라, ` + question + `"`),
		}},
		{Label: "성구 및 진리", Spans: []Span{
			plain(`"성경 `),
			link(item.Verse, f.links.Scripture(item.Verse)),
			plain(`에서는 '` + item.Truth + `'라고 알려줍니다."`),
		}},
		{Label: "마무리", Spans: []Span{
			plain(`"이 내용이 위로가 되었으면 좋겠네요. 더 궁금한 점이 있으신가요?"`),
		}},
	}

	return Card{
		Mode:     ModePhone,
		Blocks:   blocks,
		Copy:     flatten(blocks),
		Copyable: true,
	}
}
