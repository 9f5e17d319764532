// File: services/meet/fallback.go
package meet

import (
	"math/rand"
	"strings"
)

const (
	fallbackHost    = "https://meet.google.com/"
	lowercaseLetter = "abcdefghijklmnopqrstuvwxyz"
)

// FallbackLink synthesizes a placeholder meeting link in the xxx-xxxx-xxx
// code format. It is display-only and joins nothing.
func FallbackLink() string {
	return fallbackHost + strings.Join([]string{
		randomCode(3),
		randomCode(4),
		randomCode(3),
	}, "-")
}

func randomCode(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(lowercaseLetter[rand.Intn(len(lowercaseLetter))])
	}
	return b.String()
}
