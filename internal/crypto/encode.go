package crypto

import "encoding/hex"

// Hex returns lowercase hex.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// ParseHex decodes hex input, accepting either case.
func ParseHex(s string) ([]byte, error) { return hex.DecodeString(s) }
