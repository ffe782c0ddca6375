package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"MediBuddy/models"
	"MediBuddy/repositories"
	"MediBuddy/utils"
)

const (
	// SessionSlotPrefix names the durable key holding the serialized
	// session snapshot, mirroring the portal's storage key.
	SessionSlotPrefix = "medibuddy_user:"

	SessionExpiry = utils.SessionTokenExpiry
)

// ErrInvalidCredentials is returned when the credential tuple matches no
// directory entry. It is retryable immediately; there is no lockout.
var ErrInvalidCredentials = errors.New("invalid email, password or role")

// SessionSlot is the durable key-value slot the session snapshot is
// persisted to. *cache.Cache satisfies it; tests use a map-backed fake.
type SessionSlot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionService is the session store: it authenticates against the user
// directory and keeps the active session snapshot in the durable slot.
type SessionService struct {
	directory repositories.UserRepository
	slot      SessionSlot
}

func NewSessionService(directory repositories.UserRepository, slot SessionSlot) *SessionService {
	return &SessionService{directory: directory, slot: slot}
}

// Login scans the directory for an exact match on email, password and
// role. On success it creates a session, persists its snapshot and mints
// a token for it. On no match it returns ErrInvalidCredentials and leaves
// any existing session untouched.
func (s *SessionService) Login(ctx context.Context, email, password string, role models.Role) (*models.Session, string, error) {
	user, ok := s.directory.FindByCredentials(email, password, role)
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	sess := &models.Session{ID: uuid.New().String(), User: *user}
	snapshot, err := json.Marshal(sess)
	if err != nil {
		return nil, "", errors.Wrap(err, "serialize session snapshot")
	}
	if err := s.slot.Set(ctx, SessionSlotPrefix+sess.ID, snapshot, SessionExpiry); err != nil {
		return nil, "", errors.Wrap(err, "persist session snapshot")
	}

	token, err := utils.GenerateSessionToken(sess.ID, user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// Logout removes the persisted snapshot. It succeeds unconditionally:
// clearing a session that is already gone is not an error.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.slot.Delete(ctx, SessionSlotPrefix+sessionID); err != nil {
		return errors.Wrap(err, "clear session snapshot")
	}
	return nil
}

// Restore resolves a token back to its persisted session. A missing slot
// entry means logged out. A snapshot that fails to deserialize, or that
// names a user no longer in the directory, is discarded and likewise
// treated as logged out; this is the store's only recovery path.
func (s *SessionService) Restore(ctx context.Context, token string) (*models.Session, error) {
	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		return nil, nil
	}

	key := SessionSlotPrefix + claims.SessionID
	raw, err := s.slot.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "read session snapshot")
	}
	if raw == "" {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Printf("Discarding corrupt session snapshot %s: %v", claims.SessionID, err)
		if delErr := s.slot.Delete(ctx, key); delErr != nil {
			log.Printf("Failed to discard corrupt session snapshot: %v", delErr)
		}
		return nil, nil
	}
	if _, ok := s.directory.GetByID(sess.User.ID); !ok {
		log.Printf("Discarding session snapshot %s: user %q not in directory", claims.SessionID, sess.User.ID)
		if delErr := s.slot.Delete(ctx, key); delErr != nil {
			log.Printf("Failed to discard stale session snapshot: %v", delErr)
		}
		return nil, nil
	}
	return &sess, nil
}
