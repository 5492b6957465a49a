package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewReference builds an externally visible reference such as "BK-9f2c...".
// 8 random bytes keep the hex part at 16 characters.
func NewReference(prefix string) string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return prefix + "-" + hex.EncodeToString(buf)
}
