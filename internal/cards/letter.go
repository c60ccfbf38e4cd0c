package cards

import (
	"fmt"
	"time"

	"github.com/JaimeStill/discourse/internal/catalog"
)

const (
	letterRecipient = "[수신인 성함] 님께,"
	letterSignature = "[전도인 이름] 드림"
)

// LetterDate renders t as "{year}년 {month}월 {day}일" without zero padding.
func LetterDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// Letter renders the letter with today's date and placeholder names.
func (f *Formatter) Letter(item catalog.Item) Card {
	question := StripEmphasis(item.Question)
	date := LetterDate(f.now())

	body := Block{Spans: []Span{
		plain(letterRecipient + "\n\n" +
			"안녕하십니까. 저는 이웃에 살고 있는 주민입니다. 직접 뵙고 따뜻한 인사를 나누고 싶었지만, 상황이 여의치 않아 이렇게 편지로 대신 마음을 전합니다.\n\n" +
			item.Title + "\n\n" +
			"최근 저도 깊이 생각해 보게 된 질문이 하나 있는데요, 바로 \"" + question + "\"라는 점입니다. 성경 "),
		link(item.Verse, f.links.Scripture(item.Verse)),
		plain("에서는 이 질문에 대해 이렇게 알려 줍니다.\n\n" +
			"\"" + item.Truth + "\"\n\n" +
			"이 말씀이 님께 큰 희망과 위로가 되기를 바랍니다. " + item.Closing + "\n\n" +
			"더 자세한 내용은 저희 웹사이트 "),
		link(f.links.SiteLabel, f.links.SiteURL),
		plain(" 를 방문해 보시기 바랍니다. 또한 원하신다면 웹사이트를 통해 무료 성서 연구를 신청하여 성경에 대해 더 자세히 알아보실 수도 있습니다.\n\n" +
			"건강하시고 평안한 하루 되십시오.\n\n" +
			date + "\n" + letterSignature),
	}}

	return Card{
		Mode:     ModeLetter,
		Blocks:   []Block{body},
		Copy:     body.Text(),
		Copyable: true,
	}
}
