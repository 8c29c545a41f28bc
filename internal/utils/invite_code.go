package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// GenerateInviteCode returns a random 12-character bearer code. The value is
// opaque; invite lookup treats it as the unique key.
func GenerateInviteCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
