package catalog

import (
	"errors"
	"net/http"
)

// Domain errors for catalog lookups.
var (
	ErrEmpty         = errors.New("catalog has no topics")
	ErrInvalidTopic  = errors.New("invalid topic")
	ErrTopicNotFound = errors.New("topic not found")
	ErrItemNotFound  = errors.New("item not found")

	ErrEmptyField        = errors.New("empty field")
	ErrUnmatchedEmphasis = errors.New("unmatched emphasis marker")
)

// MapHTTPStatus maps catalog errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrTopicNotFound) || errors.Is(err, ErrItemNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
