package cards

import "fmt"

// Mode selects the delivery template for a card.
type Mode string

const (
	ModeConversation Mode = "conversation"
	ModePhone        Mode = "phone"
	ModeText         Mode = "text"
	ModeLetter       Mode = "letter"
)

var modeOrder = []Mode{
	ModeConversation,
	ModePhone,
	ModeText,
	ModeLetter,
}

var modeLabels = map[Mode]string{
	ModeConversation: "🗣️ 대화하기",
	ModePhone:        "☎️ 전화봉사",
	ModeText:         "📱 문자봉사",
	ModeLetter:       "✉️ 편지봉사",
}

// ModeInfo pairs a mode with its display label.
type ModeInfo struct {
	Mode  Mode   `json:"mode"`
	Label string `json:"label"`
}

// Modes returns every delivery mode in display order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modeOrder))
	for i, m := range modeOrder {
		out[i] = ModeInfo{Mode: m, Label: modeLabels[m]}
	}
	return out
}

// Label returns the display label of the mode.
func (m Mode) Label() string {
	return modeLabels[m]
}

// ParseMode validates a mode string. An empty string selects the
// conversation mode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeConversation, nil
	}
	m := Mode(s)
	if _, ok := modeLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}
