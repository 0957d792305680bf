package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryRepository(t *testing.T, ttl time.Duration) *MemorySessionRepository {
	t.Helper()

	sessionRepo := NewMemorySessionRepository(ttl)
	t.Cleanup(sessionRepo.Close)

	return sessionRepo
}

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy", func(t *testing.T) {
		// Given: a stored session
		sessionRepo := newTestMemoryRepository(t, time.Minute)
		session := newTestSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: the caller changes its own record and reads it back
		session.Players[0].Score = 100
		retrievedSession, err := sessionRepo.GetByID(ctx, "123")

		// Then: the stored record is unchanged
		require.NoError(t, err)
		assert.Equal(t, 2, retrievedSession.Players[0].Score)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		sessionRepo := newTestMemoryRepository(t, time.Minute)

		_, err := sessionRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Expired sessions are not found", func(t *testing.T) {
		// Given: a session with a short ttl
		sessionRepo := newTestMemoryRepository(t, 20*time.Millisecond)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("123")))

		// When: the ttl passes
		time.Sleep(50 * time.Millisecond)

		// Then: the session is gone
		_, err := sessionRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		require.ErrorIs(t, sessionRepo.DeleteByID(ctx, "123"), apperror.ErrSessionNotFound)
	})

	t.Run("Expired sessions are evicted", func(t *testing.T) {
		// Given: many sessions with a short ttl that are never deleted
		sessionRepo := newTestMemoryRepository(t, 20*time.Millisecond)
		for i := 0; i < 1000; i++ {
			require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession(fmt.Sprintf("s%d", i))))
		}
		require.Equal(t, 1000, sessionRepo.Len())

		// Then: they are removed from memory once the ttl passes
		require.Eventually(t, func() bool {
			return sessionRepo.Len() == 0
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("Write restarts the ttl", func(t *testing.T) {
		// Given: a session with a short ttl
		sessionRepo := newTestMemoryRepository(t, 300*time.Millisecond)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("123")))

		// When: it is written again before expiring
		time.Sleep(200 * time.Millisecond)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("123")))
		time.Sleep(200 * time.Millisecond)

		// Then: it is still there
		_, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
	})

	t.Run("Zero ttl never expires", func(t *testing.T) {
		sessionRepo := newTestMemoryRepository(t, 0)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, newTestSession("123")))

		retrievedSession, err := sessionRepo.GetByID(ctx, "123")

		require.NoError(t, err)
		assert.Equal(t, "123", retrievedSession.ID)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		// Given: a stored session
		sessionRepo := newTestMemoryRepository(t, time.Minute)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, &entity.Session{ID: "123"}))

		// When: deleting it twice
		first := sessionRepo.DeleteByID(ctx, "123")
		second := sessionRepo.DeleteByID(ctx, "123")

		// Then: only the first delete succeeds and nothing is held
		require.NoError(t, first)
		require.ErrorIs(t, second, apperror.ErrSessionNotFound)
		assert.Zero(t, sessionRepo.Len())
	})
}
