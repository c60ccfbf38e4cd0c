package cards

import (
	"errors"
	"net/http"
)

// ErrInvalidMode is returned for a mode outside the four delivery modes.
var ErrInvalidMode = errors.New("mode must be conversation, phone, text, or letter")

// MapHTTPStatus maps card errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidMode) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
