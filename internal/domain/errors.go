package domain

import types "fairdice/internal/domain/types"

// Sentinel errors re-exported from the types subpackage.
var (
	ErrInvalidRange     = types.ErrInvalidRange
	ErrIndexOutOfRange  = types.ErrIndexOutOfRange
	ErrEmptyDie         = types.ErrEmptyDie
	ErrConfiguration    = types.ErrConfiguration
	ErrInvalidSelection = types.ErrInvalidSelection
	ErrCancelled        = types.ErrCancelled
	ErrExclusivity      = types.ErrExclusivity
	ErrDigestMismatch   = types.ErrDigestMismatch
	ErrUnknownStrategy  = types.ErrUnknownStrategy
)
