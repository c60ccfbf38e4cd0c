package composer

import (
	"errors"
	"net/http"
)

// Domain errors for composer operations.
var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrInvalidStyle      = errors.New("style must be warm, polite, natural, short, or long")
	ErrMissingCredential = errors.New("credential not configured")
	ErrMalformedResponse = errors.New("malformed response")
)

// MapHTTPStatus maps composer errors and classified failures to HTTP
// status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrInvalidStyle) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrMissingCredential) {
		return http.StatusServiceUnavailable
	}

	var f *Failure
	if errors.As(err, &f) {
		switch f.Category {
		case UsageExceeded:
			return http.StatusTooManyRequests
		case MissingCredential:
			return http.StatusServiceUnavailable
		default:
			return http.StatusBadGateway
		}
	}

	return http.StatusInternalServerError
}
