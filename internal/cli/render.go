package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JaimeStill/discourse/internal/cards"
	"github.com/JaimeStill/discourse/internal/composer"
)

var (
	colorAmber = lipgloss.Color("#d97706")
	colorDim   = lipgloss.Color("#78716c")
	colorRed   = lipgloss.Color("#dc2626")
	colorGreen = lipgloss.Color("#16a34a")
)

var (
	styleHeader   = lipgloss.NewStyle().Foreground(colorAmber).Bold(true)
	styleLabel    = lipgloss.NewStyle().Foreground(colorDim).Bold(true)
	styleEmphasis = lipgloss.NewStyle().Foreground(colorAmber).Bold(true)
	styleLink     = lipgloss.NewStyle().Underline(true)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleError    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleSuccess  = lipgloss.NewStyle().Foreground(colorGreen)
)

// paint styles each line separately; lipgloss pads multi-line blocks to a
// common width.
func paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func header(text string) string {
	return paint(styleHeader, text) + "\n" + paint(styleDim, strings.Repeat("─", lipgloss.Width(text)))
}

// RenderCard renders a card for the terminal. Emphasis is highlighted and
// links print their target after the text.
func RenderCard(c cards.Card) string {
	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("%s · %s #%d", c.Mode.Label(), c.Topic, c.Index+1)))

	for _, b := range c.Blocks {
		sb.WriteString("\n\n")
		if b.Label != "" {
			sb.WriteString(paint(styleLabel, "["+b.Label+"]") + "\n")
		}
		for _, s := range b.Spans {
			sb.WriteString(renderSpan(s))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func renderSpan(s cards.Span) string {
	switch s.Kind {
	case cards.SpanEmphasis:
		return paint(styleEmphasis, s.Text)
	case cards.SpanLink:
		return paint(styleLink, s.Text) + paint(styleDim, " <"+s.Href+">")
	default:
		return s.Text
	}
}

// RenderProposal renders a proposal with its sections and verse link.
func RenderProposal(r composer.ProposalResult, links cards.Links) string {
	sections := []struct{ label, body string }{
		{"👋 인사 및 대화 시작", r.Opening + "\n\n" + r.Script},
		{"📖 관련 성구", r.Verse + paint(styleDim, " <"+links.Scripture(r.Verse)+">") + "\n" + r.VerseText},
		{"💡 핵심 진리", r.Truth},
		{"❓ 재방문 질문", r.FollowUp},
	}

	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = paint(styleLabel, s.label) + "\n" + s.body
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// RenderPolish renders a polished message and its recommended verse.
func RenderPolish(r composer.PolishResult, links cards.Links) string {
	return paint(styleLabel, "다듬어진 메시지") + "\n" + r.Text + "\n\n" +
		paint(styleLabel, "📖 추천 성구: "+r.VerseRef) + paint(styleDim, " <"+links.Scripture(r.VerseRef)+">") + "\n" +
		r.VerseText + "\n"
}

// RenderFailure renders a classified failure with its user-facing message.
func RenderFailure(f *composer.Failure) string {
	return paint(styleError, "⚠️ "+f.Message()) + "\n"
}

func renderCopied() string {
	return paint(styleSuccess, "복사되었습니다!") + "\n"
}
