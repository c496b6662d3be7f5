package crypto

import (
	"fmt"
	"io"

	"fairdice/internal/domain"
)

// KeyBytes is the size of a commitment key.
const KeyBytes = domain.KeyBytes

// GenerateKey reads a fresh 256-bit key from r.
func GenerateKey(r io.Reader) (key domain.SecretKey, err error) {
	if _, err = io.ReadFull(r, key[:]); err != nil {
		return key, fmt.Errorf("read secret key: %w", err)
	}
	return key, nil
}
