package appointment

import "errors"

var (
	ErrNotFound       = errors.New("appointment not found")
	ErrClientNotFound = errors.New("referenced client not found")
)
