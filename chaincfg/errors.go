package chaincfg

import "errors"

var (
	// ErrDuplicateCheckpoint describes two checkpoints defined at the same
	// height.
	ErrDuplicateCheckpoint = errors.New("duplicate checkpoint height")

	// ErrDuplicateNetwork describes an attempt to register a second
	// definition for a network identity the registry already knows.
	ErrDuplicateNetwork = errors.New("duplicate network identity")

	// ErrUnknownNetwork describes a lookup for a network identity that was
	// never registered.
	ErrUnknownNetwork = errors.New("unknown network identity")

	// ErrInvalidConfig describes a parameter set that is internally
	// inconsistent.
	ErrInvalidConfig = errors.New("invalid network parameters")
)
