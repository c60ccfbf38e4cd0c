package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON,
// either directly or from a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

// ErrMissingField is returned when a required string field is absent
// from a parsed JSON object or is not a string.
var ErrMissingField = errors.New("missing required field")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse attempts to unmarshal content as JSON into T.
// If direct parsing fails, it extracts JSON from a markdown code fence
// and retries. Returns ErrParseFailed if both attempts fail.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
			return result, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, content)
}

// ParseFields parses content as a JSON object into T after checking that
// every name in required is present with a non-null string value. Schema-constrained
// model output is expected to satisfy this; anything else is malformed.
func ParseFields[T any](content string, required []string) (T, error) {
	var zero T

	raw, err := Parse[map[string]json.RawMessage](content)
	if err != nil {
		return zero, err
	}

	var missing []string
	for _, name := range required {
		v, ok := raw[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		var s *string
		if err := json.Unmarshal(v, &s); err != nil || s == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return zero, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return result, nil
}
