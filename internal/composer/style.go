package composer

import "fmt"

// Style selects the tone of a polished message.
type Style string

const (
	StyleWarm    Style = "warm"
	StylePolite  Style = "polite"
	StyleNatural Style = "natural"
	StyleShort   Style = "short"
	StyleLong    Style = "long"
)

var styleOrder = []Style{
	StyleWarm,
	StylePolite,
	StyleNatural,
	StyleShort,
	StyleLong,
}

var styleInstructions = map[Style]string{
	StyleWarm:    "따뜻하고 다정하며 위로가 되는 말투",
	StylePolite:  "매우 정중하고 격식 있는 말투",
	StyleNatural: "자연스럽고 일상적인 대화체",
	StyleShort:   "핵심만 남기고 아주 간결하고 명료하게 요약한 말투",
	StyleLong:    "상대방에 대한 배려와 따뜻한 표현을 더 풍부하게 덧붙여 길게 작성한 말투",
}

var styleLabels = map[Style]string{
	StyleWarm:    "🔥 따뜻하게",
	StylePolite:  "👔 정중하게",
	StyleNatural: "🌿 자연스럽게",
	StyleShort:   "✂️ 간략하게",
	StyleLong:    "📝 더 길게",
}

// StyleInfo pairs a style with its label and instruction.
type StyleInfo struct {
	Style       Style  `json:"style"`
	Label       string `json:"label"`
	Instruction string `json:"instruction"`
}

// Styles returns every polishing style in display order.
func Styles() []StyleInfo {
	out := make([]StyleInfo, len(styleOrder))
	for i, s := range styleOrder {
		out[i] = StyleInfo{Style: s, Label: styleLabels[s], Instruction: styleInstructions[s]}
	}
	return out
}

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if _, ok := styleInstructions[style]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
	return style, nil
}

// Instruction returns the tone instruction embedded in the prompt.
func (s Style) Instruction() string {
	return styleInstructions[s]
}

// Label returns the display label.
func (s Style) Label() string {
	return styleLabels[s]
}
