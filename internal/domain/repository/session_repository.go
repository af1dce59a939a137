package repository

import (
	"context"
	"time"

	"github.com/connectflx/discovery-service/internal/domain"
)

// SessionRepository хранит состояние оболочки приложения по id сессии
type SessionRepository interface {
	// Get возвращает сессию или domain.ErrSessionNotFound
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Save сохраняет сессию и продлевает её TTL
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error

	// Delete удаляет сессию, отсутствие сессии не ошибка
	Delete(ctx context.Context, id string) error
}
