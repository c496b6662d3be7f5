package dice

import (
	"fmt"
	"strconv"
	"strings"

	"fairdice/internal/domain"
)

// MinDice is the smallest playable set: each side claims one die and the
// help table needs a third to be meaningful.
const MinDice = 3

// Parse builds one die per spec. It fails unless every spec is a
// comma-separated list of integers and there are at least MinDice of them.
func Parse(specs []string) ([]domain.Die, error) {
	if len(specs) < MinDice {
		return nil, fmt.Errorf("%w: at least %d dice are required, got %d",
			domain.ErrConfiguration, MinDice, len(specs))
	}
	out := make([]domain.Die, 0, len(specs))
	for _, spec := range specs {
		d, err := ParseDie(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParseDie parses a single comma-separated face list.
func ParseDie(spec string) (domain.Die, error) {
	tokens := strings.Split(spec, ",")
	faces := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return domain.Die{}, fmt.Errorf("%w: %q: empty face", domain.ErrConfiguration, spec)
		}
		f, err := strconv.Atoi(tok)
		if err != nil {
			return domain.Die{}, fmt.Errorf("%w: %q: face %q is not an integer",
				domain.ErrConfiguration, spec, tok)
		}
		faces = append(faces, f)
	}
	d, err := domain.NewDie(faces)
	if err != nil {
		return domain.Die{}, fmt.Errorf("%w: %q: %w", domain.ErrConfiguration, spec, err)
	}
	return d, nil
}
