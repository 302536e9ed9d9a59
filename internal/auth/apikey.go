package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// apiKeyBytes of entropy per key; the encoded key is 43 characters.
const apiKeyBytes = 32

// NewAPIKey returns a fresh URL-safe API key. Keys are stored and compared
// as issued; lookup goes through the user record that carries the key.
func NewAPIKey() (string, error) {
	raw := make([]byte, apiKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
