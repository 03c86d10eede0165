package domain

import "errors"

var (
	ErrInvalidValue = errors.New("invalid declared value")
)
