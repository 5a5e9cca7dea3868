package registry

import "errors"

var (
	ErrNotFound    = errors.New("registry: locale not found")
	ErrUnsupported = errors.New("registry: locale not supported")
	ErrInvalidData = errors.New("registry: invalid locale data")
)
