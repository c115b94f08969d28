// Package synccode generates the short shared codes that pair a display
// name to one persisted profile.
package synccode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet excludes easily-confused glyphs (0/O, 1/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the standard sync code length.
const Length = 4

// Generate returns a code of n characters drawn from Alphabet using a
// cryptographically strong random source.
func Generate(n int) (string, error) {
	if n <= 0 {
		n = Length
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("synccode: read random: %w", err)
	}
	var b strings.Builder
	for _, v := range buf {
		b.WriteByte(Alphabet[int(v)%len(Alphabet)])
	}
	return b.String(), nil
}

// Valid reports whether a normalized code has the expected shape: exactly
// Length characters, all alphanumeric. Codes are normalized by the store
// key derivation, so lowercase or hyphenated input is accepted upstream.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
