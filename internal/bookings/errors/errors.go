package errors

import "errors"

var (
	ErrInvalidDate = errors.New("invalid booking date")
)
