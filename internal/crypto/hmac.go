package crypto

import (
	"crypto/hmac"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// DigestBytes is the HMAC-SHA3-256 output size.
const DigestBytes = 32

// Digest returns HMAC-SHA3-256(key, decimal(value)).
//
// The message is the base-10 text of value, so a counterpart can recompute
// it with any HMAC tool.
func Digest(key []byte, value int) []byte {
	h := hmac.New(sha3.New256, key)
	h.Write([]byte(strconv.Itoa(value)))
	return h.Sum(nil)
}

// Equal compares two digests in constant time.
func Equal(a, b []byte) bool {
	return hmac.Equal(a, b)
}
