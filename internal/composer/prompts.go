package composer

import "fmt"

const proposalInstruction = `당신은 성경 교육 및 위로 전문가입니다. 입력된 상황을 신중하게 분석한 뒤 대화를 시작하세요. 상황에 맞는 따뜻한 대화 시작법(opening), 관련 성경 구절 장절(verse), 성경 구절 전문 내용(verseText), 핵심 진리, 그리고 대화를 이어갈 재방문 질문을 JSON 형식으로 제공하세요. 한국어로 답변하세요. 모든 신칭은 '하나님' 대신 반드시 '하느님'으로 표기하고, 성경 구절(verseText)은 반드시 wol.jw.org의 '신세계역 성경' 내용을 바탕으로 작성하세요. 여호와의 증인의 봉사 원칙에 따라 명절 인사를 직접 사용하는 것을 피하고, 대화 시작(opening) 시에는 즉시 성경 질문을 하기보다 상대방의 상황에 공감하며 자연스럽게 이어가는 대화문을 작성하세요. 특히 질문은 최대 한 번으로 제한하여 상대방이 부담을 느끼지 않게 하세요.`

const polishInstruction = `당신은 한국어 메시지 작성 및 성경 지식 전문가입니다. 다듬어진 텍스트(text)는 가독성을 위해 의미가 바뀌는 부분에서 2번의 줄바꿈을 사용하여 문단을 명확히 나누어 작성하세요. 추천 성구 장절(verseRef), 성구 내용(verseText)을 JSON 형식으로만 응답하세요. 모든 신칭은 '하나님' 대신 반드시 '하느님'으로 표기하고, 성경 구절(verseText)은 반드시 wol.jw.org의 '신세계역 성경' 내용을 바탕으로 작성하세요. 또한 여호와의 증인의 봉사 원칙에 따라 '새해 복 많이 받으세요'와 같은 세속적인 명절 인사를 직접 사용하는 것을 피하고, 대신 따뜻하고 정중하게 대화를 시작하거나 성경적인 화제로 자연스럽게 전환하는 표현을 사용하세요.`

const (
	proposalPromptFormat = `다음 상황에 대해 성경 원칙과 jw.org 자료의 논조를 바탕으로 대화 제안을 만들어줘: "%s"`
	polishPromptFormat   = `다음 초안을 %s로 다듬어주고, 이 메시지의 주제와 가장 잘 어울리는 성경 구절도 하나 추천해줘: "%s"`
)

// ProposalRequest composes the proposal request for a situation.
func ProposalRequest(situation string) Request {
	return Request{
		Prompt:            fmt.Sprintf(proposalPromptFormat, situation),
		SystemInstruction: proposalInstruction,
		Schema:            ProposalSchema,
	}
}

// PolishRequest composes the polishing request for a draft in a style.
func PolishRequest(draft string, style Style) Request {
	return Request{
		Prompt:            fmt.Sprintf(polishPromptFormat, style.Instruction(), draft),
		SystemInstruction: polishInstruction,
		Schema:            PolishSchema,
	}
}
