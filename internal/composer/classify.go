package composer

import (
	"errors"
	"strings"
)

// Category buckets a generation failure for display.
type Category string

const (
	UsageExceeded     Category = "usage_exceeded"
	InvalidCredential Category = "invalid_credential"
	MissingCredential Category = "missing_credential"
	GenericFailure    Category = "generic"
)

var categoryMessages = map[Category]string{
	UsageExceeded:     "API 사용량이 초과되었습니다. 유료 프로젝트의 키를 선택해 주세요.",
	InvalidCredential: "API 키가 유효하지 않거나 모델을 찾을 수 없습니다.",
	MissingCredential: "API 키가 설정되지 않았습니다. DISCOURSE_API_KEY 환경 변수나 설정 파일의 agent.api_key 값을 확인해 주세요.",
}

var (
	usageMarkers      = []string{"quota", "429"}
	credentialMarkers = []string{"Requested entity was not found", "API key not valid"}
)

// Failure is a classified, terminal error of one submission. Detail
// carries the raw error text.
type Failure struct {
	Category Category `json:"category"`
	Detail   string   `json:"detail,omitempty"`
}

func (f *Failure) Error() string {
	return string(f.Category) + ": " + f.Detail
}

// Message returns the user-facing text for the failure.
func (f *Failure) Message() string {
	if msg, ok := categoryMessages[f.Category]; ok {
		return msg
	}
	return "오류가 발생했습니다: " + f.Detail
}

// Classify buckets err by its message text. Checks run in priority
// order: usage markers, credential markers, then a missing credential;
// anything else is generic. A nil err yields nil.
func Classify(err error, credentialConfigured bool) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	msg := err.Error()
	switch {
	case containsAny(msg, usageMarkers):
		return &Failure{Category: UsageExceeded, Detail: msg}
	case containsAny(msg, credentialMarkers):
		return &Failure{Category: InvalidCredential, Detail: msg}
	case !credentialConfigured || errors.Is(err, ErrMissingCredential):
		return &Failure{Category: MissingCredential, Detail: msg}
	default:
		return &Failure{Category: GenericFailure, Detail: msg}
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
