package vehicle

import "errors"

var (
	ErrCarNotFound  = errors.New("car not found")
	ErrInvalidInput = errors.New("invalid car input")
)
