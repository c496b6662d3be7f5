package strategy

import (
	"crypto/rand"
	"fmt"
	"io"

	"fairdice/internal/crypto"
	"fairdice/internal/domain"
)

const (
	NameRandom  = "random"
	NameCounter = "counter"
)

// New returns the strategy registered under name. A nil r uses
// crypto/rand.Reader.
func New(name string, r io.Reader) (domain.Strategy, error) {
	if r == nil {
		r = rand.Reader
	}
	switch name {
	case NameRandom:
		return &Random{rand: r}, nil
	case NameCounter:
		return &Counter{rand: r}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", domain.ErrUnknownStrategy, name, NameRandom, NameCounter)
	}
}

// Random picks uniformly among the unclaimed dice.
type Random struct {
	rand io.Reader
}

func (s *Random) Name() string { return NameRandom }

func (s *Random) Choose(dice []domain.Die, _ domain.Matrix, exclude int) (int, error) {
	return pick(s.rand, available(len(dice), exclude))
}

// Counter answers a claimed die with the die most likely to beat it, and
// falls back to Random when it moves first.
type Counter struct {
	rand io.Reader
}

func (s *Counter) Name() string { return NameCounter }

func (s *Counter) Choose(dice []domain.Die, m domain.Matrix, exclude int) (int, error) {
	if exclude < 0 || exclude >= len(dice) || m.Size() != len(dice) {
		return pick(s.rand, available(len(dice), exclude))
	}
	return pick(s.rand, m.BestAgainst(exclude))
}

func available(n, exclude int) []int {
	out := make([]int, 0, n)
	for i := range n {
		if i != exclude {
			out = append(out, i)
		}
	}
	return out
}

func pick(r io.Reader, candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("no die left to choose: %w", domain.ErrExclusivity)
	}
	i, err := crypto.Intn(r, len(candidates))
	if err != nil {
		return 0, err
	}
	return candidates[i], nil
}

// Compile-time assertions that both strategies implement domain.Strategy.
var (
	_ domain.Strategy = (*Random)(nil)
	_ domain.Strategy = (*Counter)(nil)
)
