package character

import "errors"

var (
	ErrNilBody         = errors.New("character: physics body is nil")
	ErrInvalidSettings = errors.New("character: invalid settings")
)
