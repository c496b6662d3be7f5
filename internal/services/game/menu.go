package game

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"fairdice/internal/domain"
	"fairdice/internal/protocol/probability"
	"fairdice/internal/render"
)

const (
	keyExit = "X"
	keyHelp = "?"
)

type option struct {
	key   string
	label string
}

func numberOptions(n int) []option {
	out := make([]option, n)
	for i := range n {
		k := strconv.Itoa(i)
		out[i] = option{key: k, label: k}
	}
	return out
}

// choose shows options and returns the index of the one picked. "?" prints
// the help table and asks again without counting as a mistake; anything
// else unrecognised is re-prompted until the retry budget runs out.
func (g *game) choose(ctx context.Context, options []option) (int, error) {
	invalid := 0
	for {
		for _, o := range options {
			g.term.Printf("%s - %s\n", o.key, o.label)
		}
		g.term.Printf("%s - exit\n%s - help\n", keyExit, keyHelp)

		in, err := g.term.ReadLine(ctx, "Your selection: ")
		if err != nil {
			return 0, err
		}
		switch strings.ToUpper(in) {
		case keyExit:
			return 0, domain.ErrCancelled
		case keyHelp:
			if err := g.showHelp(); err != nil {
				return 0, err
			}
			continue
		}
		for i, o := range options {
			if in == o.key {
				return i, nil
			}
		}

		invalid++
		g.log.Debug().Str("input", in).Int("attempt", invalid).Msg("invalid selection")
		if g.svc.maxRetries > 0 && invalid > g.svc.maxRetries {
			return 0, fmt.Errorf("%w: %d attempts", domain.ErrInvalidSelection, invalid)
		}
		g.term.Printf("Invalid selection %q, try again.\n", in)
	}
}

func (g *game) showHelp() error {
	var buf bytes.Buffer
	if err := render.HelpTable(&buf, g.svc.dice, probability.Compute(g.svc.dice)); err != nil {
		return err
	}
	g.term.Printf("Probability of the win for the user:\n%s", buf.String())
	return nil
}
