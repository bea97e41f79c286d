package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewOpaqueToken returns a URL-safe random token carrying 128 bits.
func NewOpaqueToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
