package types

// KeyBytes is the size of a commitment key.
const KeyBytes = 32

// SecretKey is the 256-bit HMAC key behind a commitment.
type SecretKey [KeyBytes]byte

// Slice returns the key as a []byte.
func (k *SecretKey) Slice() []byte { return k[:] }

// Commitment is one side's hidden contribution to a fair-random draw.
//
// Digest is published immediately. Key and Value stay private until the
// counterpart has answered; after that they are revealed together with the
// combined result.
type Commitment struct {
	Key    SecretKey
	Value  int
	Range  int
	Digest []byte
}

// CombinedResult is the outcome of revealing a Commitment against the
// counterpart's value.
type CombinedResult struct {
	Key         SecretKey
	Committed   int
	Counterpart int
	Range       int
	Result      int
}
