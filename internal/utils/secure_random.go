package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// InvitationTokenBytes is the entropy of a client invitation token (64 hex chars).
const InvitationTokenBytes = 32

// GenerateSecureRandomString reads lengthInBytes bytes from crypto/rand and hex encodes them.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
