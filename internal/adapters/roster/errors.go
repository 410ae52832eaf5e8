package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrOpen          = errors.New("open roster")
	ErrDecode        = errors.New("decode roster")
	ErrInvalidRoster = errors.New("invalid roster")
	ErrUnknownFormat = errors.New("unknown output format")
)
