package crypto_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"fairdice/internal/crypto"
	"fairdice/internal/domain"
)

func TestDigest_Deterministic(t *testing.T) {
	key := make([]byte, crypto.KeyBytes)
	d1 := crypto.Digest(key, 0)
	d2 := crypto.Digest(key, 0)
	require.Len(t, d1, crypto.DigestBytes)
	require.True(t, crypto.Equal(d1, d2))
	require.False(t, crypto.Equal(d1, crypto.Digest(key, 1)))
}

func TestDigest_KeySensitivity(t *testing.T) {
	k1 := bytes.Repeat([]byte{0x01}, crypto.KeyBytes)
	k2 := bytes.Repeat([]byte{0x01}, crypto.KeyBytes)
	k2[31] ^= 0x80
	require.False(t, crypto.Equal(crypto.Digest(k1, 7), crypto.Digest(k2, 7)))
}

func TestGenerateKey_ShortReader(t *testing.T) {
	_, err := crypto.GenerateKey(bytes.NewReader(make([]byte, 5)))
	require.Error(t, err)
}

func TestGenerateKey_FillsWholeKey(t *testing.T) {
	src := bytes.Repeat([]byte{0xab}, crypto.KeyBytes)
	key, err := crypto.GenerateKey(bytes.NewReader(src))
	require.NoError(t, err)
	require.Len(t, key.Slice(), crypto.KeyBytes)
	require.Equal(t, src, key.Slice())
}

func TestIntn_Range(t *testing.T) {
	for _, n := range []int{1, 2, 3, 6, 7, 100} {
		for range 200 {
			v, err := crypto.Intn(rand.Reader, n)
			require.NoError(t, err)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
		}
	}
}

func TestIntn_InvalidRange(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := crypto.Intn(rand.Reader, n)
		require.True(t, errors.Is(err, domain.ErrInvalidRange), "n=%d: %v", n, err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Wipe(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
	crypto.Wipe(nil)
}

func TestHexRoundTrip(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	s := crypto.Hex(b)
	require.Equal(t, "deadbeef", s)
	got, err := crypto.ParseHex("DEADBEEF")
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestDigest_Vector(t *testing.T) {
	key := make([]byte, crypto.KeyBytes)
	require.Equal(t,
		"da4801ef75e4405c4ac2ce6d3b5f94fd88a7c1e3c9958079aa456a44f60d95e4",
		crypto.Hex(crypto.Digest(key, 0)))
}
