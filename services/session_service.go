package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

// ErrSessionNotFound means the token has no live server-side session:
// never created, explicitly destroyed by logout, or expired.
var ErrSessionNotFound = errors.New("session not found")

const sessionTTL = 24 * time.Hour

// Session is the server-side record behind a login token. It is created by
// login and destroyed by logout; /auth/me reads it instead of re-probing
// the user table on every page.
type Session struct {
	UserID         uuid.UUID `json:"userId"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// SessionService stores sessions in the blob store keyed by token hash.
type SessionService struct {
	store blobstore.Store
}

func NewSessionService(store blobstore.Store) *SessionService {
	return &SessionService{store: store}
}

// HashToken hashes a token with SHA-256 so raw tokens are never persisted.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func sessionKey(token string) string {
	return "session:" + HashToken(token)
}

// Create writes a fresh session for the user. Role defaults to consumer
// when the record has none.
func (s *SessionService) Create(ctx context.Context, token string, user *models.User) (*Session, error) {
	role := user.Role
	if role == "" {
		role = models.RoleConsumer
	}
	now := time.Now().UTC()
	session := &Session{
		UserID:         user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           role,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Put(ctx, sessionKey(token), data, blobstore.ForceWrite); err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}
	log.Printf("[session] created session for user %s", user.ID)
	return session, nil
}

// Get returns the live session for a token. Expired sessions are removed
// on the way out.
func (s *SessionService) Get(ctx context.Context, token string) (*Session, error) {
	blob, ok, err := s.store.Get(ctx, sessionKey(token))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(blob.Data, &session); err != nil {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.store.Delete(ctx, sessionKey(token))
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

// Touch updates the last-activity timestamp. Failures are logged and
// swallowed by callers; a stale timestamp should never block a request.
func (s *SessionService) Touch(ctx context.Context, token string) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	session.LastActivityAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = s.store.Put(ctx, sessionKey(token), data, blobstore.ForceWrite)
	return err
}

// Destroy removes the session (logout).
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, sessionKey(token)); err != nil {
		log.Printf("[session] failed to destroy session: %v", err)
		return err
	}
	return nil
}
