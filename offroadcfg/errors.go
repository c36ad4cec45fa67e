package offroadcfg

import "errors"

var (
	// ErrInvalidTolerance indicates a tolerance field was zero or negative.
	ErrInvalidTolerance = errors.New("offroadcfg: tolerance must be positive")
	// ErrUnknownBackend indicates Backend did not name a known broad-phase
	// implementation.
	ErrUnknownBackend = errors.New("offroadcfg: unknown broadphase backend")
	// ErrDecodeOptions indicates UnmarshalOptions could not parse its input.
	ErrDecodeOptions = errors.New("offroadcfg: could not decode options")
)
