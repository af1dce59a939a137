package domain

import "time"

// Stream names
const (
	StreamSelectionDirective = "stream:selection:directive"
)

// SelectionChangedEvent - событие смены выбора для внешних наблюдателей карты
type SelectionChangedEvent struct {
	SessionID  string             `json:"session_id"`
	SelectedID *int64             `json:"selected_id"`
	Source     string             `json:"source"`
	Directive  *RecenterDirective `json:"directive,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
