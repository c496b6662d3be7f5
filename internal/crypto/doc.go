// Package crypto exposes the minimal primitives used by fairdice.
//
// Contents
//
//   - 256-bit secret key generation (GenerateKey)
//   - HMAC-SHA3-256 digests and constant-time comparison (Digest, Equal)
//   - Unbiased integers in [0, n) from a byte source (Intn)
//   - Hex encoding for display and verification (Hex, ParseHex)
//   - Best-effort memory wiping for secret keys (Wipe)
//
// # Notes
//
// Every function that draws randomness takes an io.Reader so callers can
// substitute a deterministic source in tests; production code passes
// crypto/rand.Reader. Intn uses rejection sampling and never reduces a wide
// random value modulo n.
package crypto
