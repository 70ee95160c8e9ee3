// Package util holds small stateless helpers shared across the application.
package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const (
	codeSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeSuffixLength   = 5
	usernameBaseLength = 8
)

// GenerateCode produces a human-readable identifier like
// "EVT-1714089600000-A1B2C": prefix, millisecond timestamp and a short
// random suffix. Uniqueness is enforced by the storage layer, not here.
func GenerateCode(prefix string) string {
	suffix := make([]byte, codeSuffixLength)
	for i := range suffix {
		suffix[i] = codeSuffixAlphabet[rand.Intn(len(codeSuffixAlphabet))]
	}

	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// UsernameFromName derives a username candidate from a display name: the
// lowercased alphanumeric part of the name truncated to eight characters,
// followed by a random three-digit suffix. Callers retry with a fresh
// candidate when the storage layer reports a collision.
func UsernameFromName(name string) string {
	var base strings.Builder
	for _, r := range strings.ToLower(name) {
		if base.Len() >= usernameBaseLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			base.WriteRune(r)
		}
	}

	if base.Len() == 0 {
		base.WriteString("user")
	}

	// Random suffix in [100, 999], matching the three-digit convention.
	return fmt.Sprintf("%s%d", base.String(), 100+rand.Intn(900))
}
