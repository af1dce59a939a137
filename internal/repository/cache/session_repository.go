package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	cache repository.CacheRepository
}

// NewSessionRepository хранит сессии в Redis как JSON с TTL.
// Истечение сессий выполняет сам Redis.
func NewSessionRepository(cache repository.CacheRepository) repository.SessionRepository {
	return &sessionRepository{cache: cache}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, sessionKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, domain.ErrSessionNotFound
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	s.Filters = s.Filters.Normalize()
	return &s, nil
}

func (r *sessionRepository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", s.ID, err)
	}
	return r.cache.Set(ctx, sessionKey(s.ID), data, ttl)
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, sessionKey(id))
}
