package contact

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInternal      = errors.New("internal error")
)
