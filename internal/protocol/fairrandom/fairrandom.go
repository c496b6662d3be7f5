package fairrandom

import (
	"crypto/rand"
	"io"

	"fairdice/internal/crypto"
	"fairdice/internal/domain"
)

// Protocol draws commitments from an entropy source. It holds no other
// state; each Commitment it returns is owned by the caller.
type Protocol struct {
	rand io.Reader
}

// New returns a Protocol reading from r, or crypto/rand.Reader when r is nil.
func New(r io.Reader) *Protocol {
	if r == nil {
		r = rand.Reader
	}
	return &Protocol{rand: r}
}

// Commit draws a key and a value in [0, n) and binds them in a digest.
func (p *Protocol) Commit(n int) (domain.Commitment, error) {
	if n < 1 {
		return domain.Commitment{}, domain.ErrInvalidRange
	}
	key, err := crypto.GenerateKey(p.rand)
	if err != nil {
		return domain.Commitment{}, err
	}
	v, err := crypto.Intn(p.rand, n)
	if err != nil {
		crypto.Wipe(key.Slice())
		return domain.Commitment{}, err
	}
	return domain.Commitment{
		Key:    key,
		Value:  v,
		Range:  n,
		Digest: crypto.Digest(key.Slice(), v),
	}, nil
}

// PublishDigest returns the digest as lowercase hex.
func (p *Protocol) PublishDigest(c domain.Commitment) string {
	return crypto.Hex(c.Digest)
}

// Reveal combines the commitment with the counterpart's value. c must come
// from Commit; a zero Commitment has no range to reduce into and panics.
func (p *Protocol) Reveal(c domain.Commitment, counterpart int) domain.CombinedResult {
	return domain.CombinedResult{
		Key:         c.Key,
		Committed:   c.Value,
		Counterpart: counterpart,
		Range:       c.Range,
		Result:      Combine(counterpart, c.Value, c.Range),
	}
}

// Discard wipes the commitment's key and value.
func (p *Protocol) Discard(c *domain.Commitment) {
	crypto.Wipe(c.Key.Slice())
	c.Value = 0
}

// Combine returns (a + b) mod n reduced into [0, n).
func Combine(a, b, n int) int {
	r := (a%n + b%n) % n
	if r < 0 {
		r += n
	}
	return r
}

// Verify reports whether key and value reproduce digest.
func Verify(key []byte, value int, digest []byte) bool {
	if len(key) == 0 || len(digest) != crypto.DigestBytes {
		return false
	}
	return crypto.Equal(crypto.Digest(key, value), digest)
}

// VerifyHex is Verify over hex-encoded key and digest. Malformed hex never
// verifies.
func VerifyHex(keyHex string, value int, digestHex string) bool {
	key, err := crypto.ParseHex(keyHex)
	if err != nil {
		return false
	}
	digest, err := crypto.ParseHex(digestHex)
	if err != nil {
		return false
	}
	return Verify(key, value, digest)
}

// Compile-time assertion that Protocol implements domain.FairRandom.
var _ domain.FairRandom = (*Protocol)(nil)
