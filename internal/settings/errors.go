package settings

import "errors"

// ErrUnknownStrategy is returned for strategy names that are not supported.
var ErrUnknownStrategy = errors.New("unknown initialization strategy")
