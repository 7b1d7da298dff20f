package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luizgag/fiap-backend-qualidade/internal/config"
	"github.com/luizgag/fiap-backend-qualidade/internal/database"
	"github.com/luizgag/fiap-backend-qualidade/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Type = "sqlite"
	cfg.Database.Path = filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db, "sqlite")
}

func createTestUser(t *testing.T, s *Store) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()),
		PasswordHash: "not-a-real-hash",
		Role:         models.RoleTeacher,
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)

	user := createTestUser(t, s)
	assert.NotZero(t, user.ID)

	byEmail, err := s.GetUserByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, models.RoleTeacher, byEmail.Role)

	byID, err := s.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEmailExists(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	exists, err := s.EmailExists(user.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.EmailExists("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateUser(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	newName := "Renamed"
	updated, err := s.UpdateUser(user.ID, UserUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, user.Email, updated.Email)

	_, err = s.UpdateUser(9999, UserUpdate{Name: &newName})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.UpdateUser(user.ID, UserUpdate{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	hash := "deadbeef"
	expiresAt := time.Now().Add(7 * 24 * time.Hour)

	id, err := s.CreateSession(user.ID, hash, expiresAt, "127.0.0.1", "go-test")
	require.NoError(t, err)
	assert.NotZero(t, id)

	session, err := s.GetSessionByHash(hash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "127.0.0.1", session.IP)
	assert.Equal(t, "go-test", session.UserAgent)

	require.NoError(t, s.DeleteSessionByHash(hash))

	_, err = s.GetSessionByHash(hash)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExpiredSessionIsInvisible(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	// An expired row and a missing row must be indistinguishable.
	_, err := s.CreateSession(user.ID, "expired-hash", time.Now().Add(-time.Minute), "127.0.0.1", "go-test")
	require.NoError(t, err)

	_, err = s.GetSessionByHash("expired-hash")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.GetSessionByHash("never-existed")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSessionIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	// Deleting a session that never existed succeeds silently.
	assert.NoError(t, s.DeleteSessionByHash("unknown-hash"))
}

func TestUpdateSessionExpiryMustConfirm(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	// Unlike delete, update fails when no row matched.
	err := s.UpdateSessionExpiry("unknown-hash", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.CreateSession(user.ID, "hash-1", time.Now().Add(time.Hour), "127.0.0.1", "go-test")
	require.NoError(t, err)

	newExpiry := time.Now().Add(7 * 24 * time.Hour)
	require.NoError(t, s.UpdateSessionExpiry("hash-1", newExpiry))

	session, err := s.GetSessionByHash("hash-1")
	require.NoError(t, err)
	assert.WithinDuration(t, newExpiry, session.ExpiresAt, time.Second)
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	_, err := s.CreateSession(user.ID, "live", time.Now().Add(time.Hour), "127.0.0.1", "go-test")
	require.NoError(t, err)
	_, err = s.CreateSession(user.ID, "dead", time.Now().Add(-time.Hour), "127.0.0.1", "go-test")
	require.NoError(t, err)

	require.NoError(t, s.DeleteExpiredSessions())

	_, err = s.GetSessionByHash("live")
	assert.NoError(t, err)
	_, err = s.GetSessionByHash("dead")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMultipleSessionsPerUser(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	// Multi-device login: concurrent sessions for one user are all valid.
	_, err := s.CreateSession(user.ID, "device-a", time.Now().Add(time.Hour), "10.0.0.1", "phone")
	require.NoError(t, err)
	_, err = s.CreateSession(user.ID, "device-b", time.Now().Add(time.Hour), "10.0.0.2", "laptop")
	require.NoError(t, err)

	a, err := s.GetSessionByHash("device-a")
	require.NoError(t, err)
	b, err := s.GetSessionByHash("device-b")
	require.NoError(t, err)
	assert.Equal(t, user.ID, a.UserID)
	assert.Equal(t, user.ID, b.UserID)
}
