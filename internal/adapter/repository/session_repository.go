package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	"github.com/johnquangdev/interview-coach/internal/infrastructure/cache"
)

const sessionKeyPrefix = "coach:session:"

// sessionStore is the byte-level backend of the session ledger
type sessionStore interface {
	get(ctx context.Context, key string) ([]byte, bool, error)
	set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SessionRepository implements the session ledger over a key-value backend.
// Every write refreshes the session's idle expiry.
type SessionRepository struct {
	store sessionStore
	ttl   time.Duration
}

// NewMemorySessionRepository keeps sessions in process memory
func NewMemorySessionRepository(store *cache.MemoryStore, ttl time.Duration) *SessionRepository {
	return &SessionRepository{store: memoryBackend{store}, ttl: ttl}
}

// NewRedisSessionRepository keeps sessions in Redis with key expiry
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{store: redisBackend{client}, ttl: ttl}
}

// Create stores a new session
func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	if err := r.save(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByID finds a live session by ID
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entities.Session, error) {
	data, ok, err := r.store.get(ctx, sessionKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to find session by ID: %w", err)
	}
	if !ok {
		return nil, entities.ErrSessionNotFound
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &session, nil
}

// SetLastResponse replaces the session's last verdict
func (r *SessionRepository) SetLastResponse(ctx context.Context, id string, resp entities.CoachingResponse) error {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	session.SetLastResponse(resp)
	if err := r.save(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) save(ctx context.Context, session *entities.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.store.set(ctx, sessionKey(session.ID), data, r.ttl)
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

type memoryBackend struct {
	store *cache.MemoryStore
}

func (m memoryBackend) get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.store.Get(key)
	return []byte(v), ok, nil
}

func (m memoryBackend) set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.store.Set(key, string(value), ttl)
	return nil
}

type redisBackend struct {
	client *redis.Client
}

func (b redisBackend) get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b redisBackend) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.client.Set(ctx, key, value, ttl).Err()
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)
