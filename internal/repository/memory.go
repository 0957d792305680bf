package repository

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type MemorySessionRepository struct {
	cache *ttlcache.Cache[string, entity.Session]
}

// NewMemorySessionRepository keeps sessions in process memory with the same expiry rules as Redis:
// every write restarts the ttl, reads do not. A zero ttl keeps sessions until they are deleted.
// Expired sessions are evicted in the background until Close is called.
func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	cache := ttlcache.New[string, entity.Session](
		ttlcache.WithTTL[string, entity.Session](ttl),
		ttlcache.WithDisableTouchOnHit[string, entity.Session](),
	)

	go cache.Start()

	return &MemorySessionRepository{cache: cache}
}

func (that *MemorySessionRepository) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.cache.Set(session.ID, copySession(session), ttlcache.DefaultTTL)

	return nil
}

func (that *MemorySessionRepository) GetByID(_ context.Context, id string) (*entity.Session, error) {
	item := that.cache.Get(id)
	if item == nil {
		return nil, apperror.ErrSessionNotFound
	}

	value := item.Value()
	session := copySession(&value)

	return &session, nil
}

func (that *MemorySessionRepository) DeleteByID(_ context.Context, id string) error {
	if that.cache.Get(id) == nil {
		return apperror.ErrSessionNotFound
	}

	that.cache.Delete(id)

	return nil
}

// Len reports how many sessions are held, expired ones not yet evicted included.
func (that *MemorySessionRepository) Len() int {
	return that.cache.Len()
}

// Close stops background eviction.
func (that *MemorySessionRepository) Close() {
	that.cache.Stop()
}

// copySession detaches the players slice so callers cannot change stored records.
func copySession(session *entity.Session) entity.Session {
	copied := *session
	copied.Players = append([]entity.PlayerState(nil), session.Players...)

	return copied
}
