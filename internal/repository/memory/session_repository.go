// Package memory - хранилище сессий в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/connectflx/discovery-service/internal/domain"
)

type entry struct {
	session   domain.Session
	expiresAt time.Time
}

// SessionRepository хранит копии сессий с TTL. Просроченные записи не
// отдаются из Get и удаляются методом Sweep.
type SessionRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// WithClock подменяет источник времени
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(e.expiresAt) {
		return nil, domain.ErrSessionNotFound
	}
	s := cloneSession(e.session)
	return &s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.entries[s.ID] = entry{
		session:   cloneSession(*s),
		expiresAt: r.now().Add(ttl),
	}
	r.mu.Unlock()
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
	return nil
}

// Sweep удаляет просроченные сессии и возвращает их количество
func (r *SessionRepository) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len - число записей, включая ещё не вычищенные просроченные
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func cloneSession(s domain.Session) domain.Session {
	s.Filters = domain.FilterSelection{
		Types:       append([]string{}, s.Filters.Types...),
		Specialties: append([]string{}, s.Filters.Specialties...),
		Lakes:       append([]string{}, s.Filters.Lakes...),
		Tags:        append([]string{}, s.Filters.Tags...),
	}
	if s.SelectedID != nil {
		id := *s.SelectedID
		s.SelectedID = &id
	}
	return s
}
