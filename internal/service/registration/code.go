package registration

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewCheckInCode returns a random URL-safe check-in code (32 bytes of entropy).
func NewCheckInCode() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate check-in code: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
