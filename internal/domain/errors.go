package domain

import "errors"

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrNoCaption       = errors.New("no caption available")
	ErrProviderFailure = errors.New("provider failure")
)
