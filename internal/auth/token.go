// Package auth issues and verifies the fernet session tokens carried by the
// demo-session cookie. Tokens embed the user ID and expire with the fernet
// TTL, so the middleware needs no server-side session table.
package auth

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	apperrors "github.com/nwtracker/Net-Worth-Tracker-Backend/internal/errors"
)

// TokenIssuer encrypts and verifies session tokens with a single fernet key.
type TokenIssuer struct {
	key *fernet.Key
	ttl time.Duration
}

// NewTokenIssuer creates a TokenIssuer from a base64 fernet key string.
func NewTokenIssuer(key string, ttl time.Duration) (*TokenIssuer, error) {
	decoded, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session key: %w", err)
	}

	return &TokenIssuer{key: decoded, ttl: ttl}, nil
}

// GenerateKey produces a fresh base64 fernet key, for first-run setup.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return key.Encode(), nil
}

// Issue encrypts the user ID into a session token.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(userID), t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(token), nil
}

// Verify decrypts a session token and returns the embedded user ID.
// Returns apperrors.ErrSessionInvalid for tampered or expired tokens.
func (t *TokenIssuer) Verify(token string) (string, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), t.ttl, []*fernet.Key{t.key})
	if payload == nil {
		return "", apperrors.ErrSessionInvalid
	}
	return string(payload), nil
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}
