package properties

import "errors"

var (
	// ErrResourceLoad is returned when the resource is missing or cannot be read.
	ErrResourceLoad = errors.New("settings resource could not be read")
	// ErrParse is returned when the resource contains malformed entries.
	ErrParse = errors.New("settings resource could not be parsed")
)
