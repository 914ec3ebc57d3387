package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns 2n random hex characters, used for DOM element ids.
func RandomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
