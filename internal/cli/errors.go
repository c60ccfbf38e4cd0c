package cli

import "errors"

var (
	ErrNotCopyable    = errors.New("mode has no copy text")
	ErrCopyNeedsIndex = errors.New("--copy needs an item index")
	ErrInvalidIndex   = errors.New("index must be a positive number")
)
