package checkout

import "errors"

// ErrUnknownEntity is returned by Entity for names it does not know.
var ErrUnknownEntity = errors.New("unknown entity")
