package app

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"fairdice/internal/domain"
	"fairdice/internal/protocol/fairrandom"
	gamesvc "fairdice/internal/services/game"
	"fairdice/internal/services/strategy"
)

// Wire bundles the wired strategy and game service for the CLI.
type Wire struct {
	Strategy domain.Strategy
	Game     *gamesvc.Service
	Dice     []domain.Die
}

// NewLogger returns a console logger on w at the configured level.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// NewWire constructs the dependency graph from cfg for the given dice. A nil
// entropy source uses crypto/rand.
func NewWire(cfg Config, dice []domain.Die, logger zerolog.Logger, entropy io.Reader) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fair := fairrandom.New(entropy)
	strat, err := strategy.New(cfg.Strategy, entropy)
	if err != nil {
		return nil, err
	}
	game := gamesvc.New(dice, fair, strat, gamesvc.Config{
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	})

	logger.Debug().
		Int("dice", len(dice)).
		Str("strategy", strat.Name()).
		Int("max_retries", cfg.MaxRetries).
		Msg("app wired")

	return &Wire{
		Strategy: strat,
		Game:     game,
		Dice:     dice,
	}, nil
}
