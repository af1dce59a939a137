package domain

import (
	"errors"
	"time"
)

// ErrSessionNotFound возвращается репозиторием, если сессии нет или она истекла
var ErrSessionNotFound = errors.New("session not found")

// Selection source constants
const (
	SelectionSourceMarker      = "marker"
	SelectionSourceListRow     = "list_row"
	SelectionSourceDetailClose = "detail_close"
	SelectionSourceBackground  = "background"
)

// Panels - состояние панелей оболочки (панель фильтров, мобильный список)
type Panels struct {
	FiltersOpen bool `json:"filters_open"`
	ListOpen    bool `json:"list_open"`
}

// Session - единый источник состояния оболочки приложения для одного клиента
type Session struct {
	ID         string          `json:"id"`
	Search     string          `json:"search"`
	Filters    FilterSelection `json:"filters"`
	SelectedID *int64          `json:"selected_id"`
	Panels     Panels          `json:"panels"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewSession creates an empty session state
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Filters:   FilterSelection{}.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasSelection reports whether a location is selected
func (s *Session) HasSelection() bool {
	return s.SelectedID != nil
}

// SetSelected выставляет или сбрасывает выбор. Возвращает true, если id изменился.
func (s *Session) SetSelected(id *int64) bool {
	switch {
	case s.SelectedID == nil && id == nil:
		return false
	case s.SelectedID != nil && id != nil && *s.SelectedID == *id:
		return false
	}
	if id == nil {
		s.SelectedID = nil
		return true
	}
	v := *id
	s.SelectedID = &v
	return true
}

// DropUnresolved сбрасывает выбор, если выбранной локации нет в каталоге.
// Возвращает true, если выбор был сброшен.
func (s *Session) DropUnresolved(c *Catalog) bool {
	if s.SelectedID == nil || c.Resolve(*s.SelectedID) != nil {
		return false
	}
	s.SelectedID = nil
	return true
}

// DetailVisibleMobile - мобильная карточка видна, когда выбор разрешается в каталоге и закрыт список
func (s *Session) DetailVisibleMobile(c *Catalog) bool {
	return s.SelectedID != nil && c.Resolve(*s.SelectedID) != nil && !s.Panels.ListOpen
}
