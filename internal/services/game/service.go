package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"fairdice/internal/crypto"
	"fairdice/internal/domain"
	"fairdice/internal/protocol/probability"
)

// Config tunes a Service.
type Config struct {
	// MaxRetries is how many invalid answers in a row a menu tolerates
	// before the game exits. Zero means unlimited.
	MaxRetries int

	Logger zerolog.Logger
}

// Service plays games over a fixed set of dice.
type Service struct {
	dice       []domain.Die
	fair       domain.FairRandom
	strategy   domain.Strategy
	maxRetries int
	log        zerolog.Logger
}

// New constructs a game Service.
func New(dice []domain.Die, fair domain.FairRandom, strategy domain.Strategy, cfg Config) *Service {
	return &Service{
		dice:       dice,
		fair:       fair,
		strategy:   strategy,
		maxRetries: cfg.MaxRetries,
		log:        cfg.Logger.With().Str("component", "game").Logger(),
	}
}

// game is the state of one Play call.
type game struct {
	svc   *Service
	term  domain.Terminal
	log   zerolog.Logger
	state State
	out   domain.Outcome
}

// Play runs one game to completion or exit.
//
// Leaving through EXIT is not an error: the returned Outcome has Exited set
// and ExitReason explains why. A non-nil error means an invariant broke
// (a die claimed twice, a roll index outside its die, a failing entropy
// source) and the outcome must not be trusted.
func (s *Service) Play(ctx context.Context, term domain.Terminal) (domain.Outcome, error) {
	g := &game{
		svc:  s,
		term: term,
		log:  s.log,
		out:  domain.Outcome{UserDie: -1, ComputerDie: -1},
	}
	for g.state = StateInit; !g.state.Terminal(); {
		next, err := g.step(ctx)
		if err != nil {
			if !isExit(err) {
				g.log.Error().Err(err).Stringer("state", g.state).Msg("game aborted")
				return g.out, err
			}
			g.out.Exited = true
			g.out.ExitReason = err
			g.log.Info().Err(err).Stringer("state", g.state).Msg("game exited")
			g.term.Printf("Exiting the game.\n")
			next = StateExit
		}
		g.log.Debug().Stringer("from", g.state).Stringer("to", next).Msg("state transition")
		g.state = next
	}
	return g.out, nil
}

func isExit(err error) bool {
	return errors.Is(err, domain.ErrCancelled) ||
		errors.Is(err, domain.ErrInvalidSelection) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (g *game) step(ctx context.Context) (State, error) {
	switch g.state {
	case StateInit:
		return StateDetermineFirst, nil
	case StateDetermineFirst:
		return StateSelectDice, g.determineFirst(ctx)
	case StateSelectDice:
		return StateRoll, g.selectDice(ctx)
	case StateRoll:
		return StateResult, g.roll(ctx)
	case StateResult:
		g.result()
		return StateDone, nil
	default:
		return StateExit, fmt.Errorf("no transition out of state %s", g.state)
	}
}

// determineFirst lets the user guess the computer's bit. A correct guess
// combines to 0 and gives the user the first move.
func (g *game) determineFirst(ctx context.Context) error {
	g.term.Printf("Let's determine who makes the first move.\n")
	draw, err := g.fairDraw(ctx, 2, func(digest string) {
		g.term.Printf("I selected a random value in the range 0..1 (HMAC=%s).\n", digest)
		g.term.Printf("Try to guess my selection.\n")
	})
	if err != nil {
		return err
	}
	g.term.Printf("My selection: %d (KEY=%s).\n", draw.Committed, crypto.Hex(draw.Key.Slice()))

	if draw.Result == 0 {
		g.out.FirstMover = domain.SideUser
		g.term.Printf("You make the first move.\n")
	} else {
		g.out.FirstMover = domain.SideComputer
		g.term.Printf("I make the first move.\n")
	}
	return nil
}

func (g *game) selectDice(ctx context.Context) error {
	if g.out.FirstMover == domain.SideComputer {
		c, err := g.computerDie(-1)
		if err != nil {
			return err
		}
		g.out.ComputerDie = c
		u, err := g.chooseUserDie(ctx, c)
		if err != nil {
			return err
		}
		g.out.UserDie = u
	} else {
		u, err := g.chooseUserDie(ctx, -1)
		if err != nil {
			return err
		}
		g.out.UserDie = u
		c, err := g.computerDie(u)
		if err != nil {
			return err
		}
		g.out.ComputerDie = c
	}

	g.log.Debug().
		Int("user_die", g.out.UserDie).
		Int("computer_die", g.out.ComputerDie).
		Str("strategy", g.svc.strategy.Name()).
		Msg("dice claimed")
	return nil
}

// computerDie asks the strategy for a die and checks it is a real die not
// already held by the user.
func (g *game) computerDie(claimed int) (int, error) {
	dice := g.svc.dice
	c, err := g.svc.strategy.Choose(dice, probability.Compute(dice), claimed)
	if err != nil {
		return 0, err
	}
	if c < 0 || c >= len(dice) {
		return 0, fmt.Errorf("%w: strategy %s chose die %d of %d", domain.ErrExclusivity, g.svc.strategy.Name(), c, len(dice))
	}
	if c == claimed {
		return 0, fmt.Errorf("%w: both sides hold die %d", domain.ErrExclusivity, c)
	}
	g.term.Printf("I choose the %s dice.\n", dice[c])
	return c, nil
}

func (g *game) chooseUserDie(ctx context.Context, claimed int) (int, error) {
	g.term.Printf("Choose your dice:\n")
	var (
		opts    []option
		indices []int
	)
	for i, d := range g.svc.dice {
		if i == claimed {
			continue
		}
		opts = append(opts, option{key: fmt.Sprint(i), label: d.String()})
		indices = append(indices, i)
	}
	k, err := g.choose(ctx, opts)
	if err != nil {
		return 0, err
	}
	u := indices[k]
	g.term.Printf("You choose the %s dice.\n", g.svc.dice[u])
	return u, nil
}

func (g *game) roll(ctx context.Context) error {
	g.term.Printf("It's time for my roll.\n")
	r, err := g.rollDie(ctx, g.out.ComputerDie)
	if err != nil {
		return err
	}
	g.out.ComputerRoll = r
	g.term.Printf("My roll result is %d.\n", r.Face)

	g.term.Printf("It's time for your roll.\n")
	r, err = g.rollDie(ctx, g.out.UserDie)
	if err != nil {
		return err
	}
	g.out.UserRoll = r
	g.term.Printf("Your roll result is %d.\n", r.Face)
	return nil
}

func (g *game) rollDie(ctx context.Context, idx int) (domain.Roll, error) {
	die := g.svc.dice[idx]
	n := die.Len()
	draw, err := g.fairDraw(ctx, n, func(digest string) {
		g.term.Printf("I selected a random value in the range 0..%d (HMAC=%s).\n", n-1, digest)
		g.term.Printf("Add your number modulo %d.\n", n)
	})
	if err != nil {
		return domain.Roll{}, err
	}
	g.term.Printf("My number is %d (KEY=%s).\n", draw.Committed, crypto.Hex(draw.Key.Slice()))
	g.term.Printf("The result is %d + %d = %d (mod %d).\n", draw.Committed, draw.Counterpart, draw.Result, n)

	face, err := die.ValueAt(draw.Result)
	if err != nil {
		return domain.Roll{}, err
	}
	return domain.Roll{Draw: draw, Face: face}, nil
}

func (g *game) result() {
	u, c := g.out.UserRoll.Face, g.out.ComputerRoll.Face
	switch {
	case u > c:
		g.out.Winner = domain.SideUser
		g.term.Printf("You win (%d > %d)!\n", u, c)
	case c > u:
		g.out.Winner = domain.SideComputer
		g.term.Printf("I win (%d > %d)!\n", c, u)
	default:
		g.out.Winner = domain.SideNone
		g.term.Printf("It's a tie (%d = %d)!\n", u, c)
	}
	g.log.Info().
		Stringer("winner", g.out.Winner).
		Int("user_face", u).
		Int("computer_face", c).
		Msg("game finished")
}

// fairDraw runs one commit-reveal round over [0, n). show is called with the
// digest before the user is asked for a number. If the round does not reach
// Reveal the commitment is discarded.
func (g *game) fairDraw(ctx context.Context, n int, show func(digest string)) (domain.CombinedResult, error) {
	c, err := g.svc.fair.Commit(n)
	if err != nil {
		return domain.CombinedResult{}, err
	}
	revealed := false
	defer func() {
		if !revealed {
			g.svc.fair.Discard(&c)
			g.log.Debug().Int("range", n).Msg("commitment discarded")
		}
	}()

	digest := g.svc.fair.PublishDigest(c)
	g.log.Debug().Int("range", n).Str("hmac", digest).Msg("commitment published")
	show(digest)

	k, err := g.choose(ctx, numberOptions(n))
	if err != nil {
		return domain.CombinedResult{}, err
	}
	draw := g.svc.fair.Reveal(c, k)
	revealed = true
	g.log.Debug().Int("range", n).Int("result", draw.Result).Msg("commitment revealed")
	return draw, nil
}

// Compile-time assertion that Service implements domain.GameService.
var _ domain.GameService = (*Service)(nil)
