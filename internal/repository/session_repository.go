package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// SessionRepository stores login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionRepository stores sessions as JSON values that expire with
// the session.
func NewRedisSessionRepository(client *redis.Client, prefix string) SessionRepository {
	return &redisSessionRepository{client: client, prefix: prefix}
}

func (r *redisSessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *redisSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}
	return r.client.Set(ctx, r.key(session.ID), payload, ttl).Err()
}

func (r *redisSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewMemorySessionRepository keeps sessions in process memory.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: map[string]domain.Session{}, now: time.Now}
}

func (r *memorySessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *memorySessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	if session.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
