package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomart-commerce/robomart-backend/blobstore"
	"github.com/robomart-commerce/robomart-backend/models"
)

func testUser(t *testing.T) *models.User {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return &models.User{
		ID:    id,
		Email: "shopper@example.com",
		Name:  "Shopper",
		Role:  models.RoleConsumer,
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewSessionService(store)
	ctx := context.Background()
	user := testUser(t)

	created, err := svc.Create(ctx, "token-1", user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, models.RoleConsumer, created.Role)

	got, err := svc.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	t.Run("raw token is not the storage key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "session:token-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Get(ctx, "never-issued")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	require.NoError(t, svc.Destroy(ctx, "token-1"))
	_, err = svc.Get(ctx, "token-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Logout twice is fine
	assert.NoError(t, svc.Destroy(ctx, "token-1"))
}

func TestSessionExpiry(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewSessionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "token-1", testUser(t))
	require.NoError(t, err)

	// Rewrite with an expiry in the past
	_, err = store.Put(ctx, sessionKey("token-1"),
		[]byte(`{"userId":"018f0000-0000-7000-8000-000000000000","email":"shopper@example.com","expiresAt":"2020-01-01T00:00:00Z"}`),
		blobstore.ForceWrite)
	require.NoError(t, err)

	_, err = svc.Get(ctx, "token-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Expired record is removed on read
	_, ok, err := store.Get(ctx, sessionKey("token-1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRoleDefaultsToConsumer(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewSessionService(store)
	ctx := context.Background()

	user := testUser(t)
	user.Role = ""

	created, err := svc.Create(ctx, "token-1", user)
	require.NoError(t, err)
	assert.Equal(t, models.RoleConsumer, created.Role)
}

func TestSessionTouch(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewSessionService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, "token-1", testUser(t))
	require.NoError(t, err)

	require.NoError(t, svc.Touch(ctx, "token-1"))

	got, err := svc.Get(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, got.LastActivityAt.Before(created.LastActivityAt))
}
