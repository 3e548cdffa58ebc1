package attendance

import "errors"

var (
	ErrEventNotFound = errors.New("attendance event not found")
)
