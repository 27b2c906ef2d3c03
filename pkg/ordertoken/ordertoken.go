package ordertoken

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Prefix is the human-scannable marker carried by every order id.
const Prefix = "ORD-"

const (
	tokenLen = 9
	charset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// New returns a fresh order id of the form ORD-XXXXXXXXX. Uniqueness is
// enforced by the orders primary key, not here.
func New() (string, error) {
	buf := make([]byte, tokenLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate order token: %w", err)
	}
	out := make([]byte, tokenLen)
	for i, b := range buf {
		out[i] = charset[int(b)%len(charset)]
	}
	return Prefix + string(out), nil
}

// Valid reports whether the value looks like an order id we could have issued.
func Valid(value string) bool {
	if !strings.HasPrefix(value, Prefix) {
		return false
	}
	body := value[len(Prefix):]
	if len(body) != tokenLen {
		return false
	}
	for _, r := range body {
		if !strings.ContainsRune(charset, r) {
			return false
		}
	}
	return true
}
