package domain

import (
	interfaces "fairdice/internal/domain/interfaces"
	types "fairdice/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Die            = types.Die
	SecretKey      = types.SecretKey
	Commitment     = types.Commitment
	CombinedResult = types.CombinedResult
	Matrix         = types.Matrix
	Side           = types.Side
	Roll           = types.Roll
	Outcome        = types.Outcome
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	FairRandom  = interfaces.FairRandom
	Strategy    = interfaces.Strategy
	Terminal    = interfaces.Terminal
	GameService = interfaces.GameService
)

// Re-exported constructors and constants.
var (
	NewDie    = types.NewDie
	NewMatrix = types.NewMatrix
)

const (
	SideNone     = types.SideNone
	SideUser     = types.SideUser
	SideComputer = types.SideComputer
	Undefined    = types.Undefined
	KeyBytes     = types.KeyBytes
)
