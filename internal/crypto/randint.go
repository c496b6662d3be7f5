package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"fairdice/internal/domain"
)

// Intn returns a uniform integer in [0, n) read from r.
func Intn(r io.Reader, n int) (int, error) {
	if n < 1 {
		return 0, domain.ErrInvalidRange
	}
	if n == 1 {
		return 0, nil
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("draw random value: %w", err)
	}
	return int(v.Int64()), nil
}
