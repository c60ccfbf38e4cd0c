package composer

// ProposalResult is a drafted conversation for a described situation.
type ProposalResult struct {
	Opening   string `json:"opening"`
	Script    string `json:"script"`
	Verse     string `json:"verse"`
	VerseText string `json:"verseText"`
	Truth     string `json:"truth"`
	FollowUp  string `json:"followUp"`
}

// CopyText renders the proposal as the clipboard summary.
func (r ProposalResult) CopyText() string {
	return "[인사] " + r.Opening + "\n[성구] " + r.Verse + "\n[진리] " + r.Truth + "\n[재방문] " + r.FollowUp
}

// PolishResult is a rewritten draft with one recommended verse.
type PolishResult struct {
	Text      string `json:"text"`
	VerseRef  string `json:"verseRef"`
	VerseText string `json:"verseText"`
}

// ProposalSchema constrains proposal responses.
var ProposalSchema = Schema{
	Name: "proposal",
	Fields: []Field{
		{Name: "opening"},
		{Name: "script"},
		{Name: "verse"},
		{Name: "verseText"},
		{Name: "truth"},
		{Name: "followUp"},
	},
}

// PolishSchema constrains polishing responses.
var PolishSchema = Schema{
	Name: "polish",
	Fields: []Field{
		{Name: "text", Description: "문단이 잘 나누어진 다듬어진 메시지 내용"},
		{Name: "verseRef", Description: "추천 성구 장절 (예: 시편 37:29)"},
		{Name: "verseText", Description: "추천 성구의 전체 텍스트 내용"},
	},
}
