package utils

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/o1egl/paseto"

	"MediBuddy/models"
)

// SessionTokenExpiry bounds how long a persisted session outlives its login.
const SessionTokenExpiry = 24 * time.Hour

// SessionClaims is the data carried in the session token: which slot the
// snapshot lives in, plus the identity it was minted for.
type SessionClaims struct {
	SessionID string      `json:"sessionId"`
	UserID    string      `json:"userId"`
	Role      models.Role `json:"role"`
	Expiry    time.Time   `json:"expiry"`
}

// GetSymmetricKey retrieves the symmetric key from the environment
// variable and ensures it has the correct length (32 bytes).
func GetSymmetricKey() []byte {
	key := os.Getenv("SYMMETRIC_KEY")
	if len(key) != 32 {
		log.Fatalf("SYMMETRIC_KEY must be 32 bytes long. Current length: %d", len(key))
	}
	return []byte(key)
}

// GenerateSessionToken mints a PASETO token binding the client to its
// persisted session slot.
func GenerateSessionToken(sessionID, userID string, role models.Role) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		Expiry:    time.Now().Add(SessionTokenExpiry),
	}

	token, err := paseto.NewV2().Encrypt(GetSymmetricKey(), claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return token, nil
}

// ValidateSessionToken decrypts the token and checks its expiry.
func ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(tokenString, GetSymmetricKey(), &claims, nil); err != nil {
		return nil, fmt.Errorf("failed to decrypt session token: %w", err)
	}
	if time.Now().After(claims.Expiry) {
		return nil, errors.New("session token expired")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("session token carries unknown role %q", claims.Role)
	}
	return &claims, nil
}
