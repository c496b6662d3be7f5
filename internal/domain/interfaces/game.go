package interfaces

import (
	"context"

	domaintypes "fairdice/internal/domain/types"
)

// FairRandom runs the commit-reveal exchange behind every unbiased draw.
type FairRandom interface {
	Commit(n int) (domaintypes.Commitment, error)
	PublishDigest(c domaintypes.Commitment) string
	Reveal(c domaintypes.Commitment, counterpart int) domaintypes.CombinedResult
	// Discard wipes an unrevealed commitment's key.
	Discard(c *domaintypes.Commitment)
}

// Strategy picks the computer's die. exclude is the index already claimed by
// the user, or -1.
type Strategy interface {
	Name() string
	Choose(dice []domaintypes.Die, m domaintypes.Matrix, exclude int) (int, error)
}

// Terminal is the interactive session a game talks to.
type Terminal interface {
	Printf(format string, args ...any)
	ReadLine(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GameService plays a single game over a terminal session.
type GameService interface {
	Play(ctx context.Context, term Terminal) (domaintypes.Outcome, error)
}
