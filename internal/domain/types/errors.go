package types

import "errors"

var (
	// ErrInvalidRange is returned when a fair-random draw is requested over
	// an empty range.
	ErrInvalidRange = errors.New("range must be at least 1")

	// ErrIndexOutOfRange is returned by Die.ValueAt for an index outside the
	// die's faces. Reaching it means a roll result was not reduced modulo the
	// face count.
	ErrIndexOutOfRange = errors.New("face index out of range")

	// ErrEmptyDie is returned when a die is built without faces.
	ErrEmptyDie = errors.New("die must have at least one face")

	// ErrConfiguration marks a malformed dice specification.
	ErrConfiguration = errors.New("invalid dice configuration")

	// ErrInvalidSelection marks menu input outside the offered options.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCancelled is returned when the player exits mid-game.
	ErrCancelled = errors.New("game cancelled")

	// ErrExclusivity means both sides ended up holding the same die.
	ErrExclusivity = errors.New("die already claimed by the other side")

	// ErrDigestMismatch is returned when a revealed key and value do not
	// reproduce the published digest.
	ErrDigestMismatch = errors.New("revealed key and value do not match digest")

	// ErrUnknownStrategy is returned for an unrecognised opponent strategy name.
	ErrUnknownStrategy = errors.New("unknown opponent strategy")
)
