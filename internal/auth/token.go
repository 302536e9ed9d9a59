package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noteshq/notesapi/internal/common"
)

// DefaultTokenTTL applies when a TokenManager is built with a zero TTL.
const DefaultTokenTTL = 15 * time.Minute

// TokenManager mints and verifies HS256 access tokens. The secret is fixed
// at construction and shared by every verifier in the process.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token whose subject is the username, expiring after the
// manager's TTL.
func (m *TokenManager) Issue(username string) (string, error) {
	return m.IssueWithTTL(username, m.ttl)
}

func (m *TokenManager) IssueWithTTL(username string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject username.
// Expired tokens are reported distinctly from every other defect.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrUnauthenticated
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrUnauthenticated
	}
	return claims.Subject, nil
}
