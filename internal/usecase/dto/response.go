package dto

import (
	"time"

	"github.com/connectflx/discovery-service/internal/domain"
)

// TagBadge - бейдж тега. Для тега вне словаря Label и Color пустые.
type TagBadge struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// LocationRow - строка списка локаций
type LocationRow struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	Icon               string     `json:"icon"`
	Color              string     `json:"color"`
	Rating             float64    `json:"rating"`
	RatingDisplay      string     `json:"rating_display"`
	Specialties        []string   `json:"specialties"`
	SpecialtiesDisplay string     `json:"specialties_display"`
	Tags               []TagBadge `json:"tags"`
	MoreTags           int        `json:"more_tags"`
	Selected           bool       `json:"selected"`
}

// MarkerPopup - содержимое всплывающей подсказки маркера
type MarkerPopup struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Marker - маркер на карте
type Marker struct {
	ID       int64       `json:"id"`
	Lat      float64     `json:"lat"`
	Lng      float64     `json:"lng"`
	Type     string      `json:"type"`
	Icon     string      `json:"icon"`
	Color    string      `json:"color"`
	Selected bool        `json:"selected"`
	Popup    MarkerPopup `json:"popup"`
}

// WebsiteLink - ссылка на сайт, открывается в новом контексте просмотра
type WebsiteLink struct {
	URL              string `json:"url"`
	OpenInNewContext bool   `json:"open_in_new_context"`
}

// LocationDetail - карточка выбранной локации
type LocationDetail struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Type               string           `json:"type"`
	TypeLabel          string           `json:"type_label"`
	Icon               string           `json:"icon"`
	Color              string           `json:"color"`
	Rating             float64          `json:"rating"`
	RatingDisplay      string           `json:"rating_display"`
	Address            string           `json:"address"`
	CopyText           string           `json:"copy_text"`
	Lat                float64          `json:"lat"`
	Lng                float64          `json:"lng"`
	Specialties        []string         `json:"specialties"`
	SpecialtiesDisplay string           `json:"specialties_display"`
	Lake               *string          `json:"lake,omitempty"`
	Tags               []TagBadge       `json:"tags"`
	Website            WebsiteLink      `json:"website"`
	ImageURL           string           `json:"image_url"`
	MiniMap            domain.ViewState `json:"mini_map"`
}

// Option - вариант мультиселекта фильтров
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FacetOptions - варианты для всех фильтров, включая фиксированный список типов
type FacetOptions struct {
	Types       []Option `json:"types"`
	Specialties []Option `json:"specialties"`
	Lakes       []Option `json:"lakes"`
	Tags        []Option `json:"tags"`
}

// FacetsResponse - значения фильтров, выведенные из каталога
type FacetsResponse struct {
	Specialties []string     `json:"specialties"`
	Lakes       []string     `json:"lakes"`
	Tags        []string     `json:"tags"`
	Options     FacetOptions `json:"options"`
}

// TagVocabularyEntry - элемент словаря тегов
type TagVocabularyEntry struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// LocationListResponse - отфильтрованный список
type LocationListResponse struct {
	Locations    []LocationRow `json:"locations"`
	Total        int           `json:"total"`
	CatalogTotal int           `json:"catalog_total"`
}

// MapConfigResponse - параметры виджета карты
type MapConfigResponse struct {
	Bounds               domain.BoundingBox `json:"bounds"`
	MinZoom              float64            `json:"min_zoom"`
	MaxZoom              float64            `json:"max_zoom"`
	Initial              domain.ViewState   `json:"initial"`
	SelectZoom           float64            `json:"select_zoom"`
	DetailZoom           float64            `json:"detail_zoom"`
	TransitionDurationMS int64              `json:"transition_duration_ms"`
	StyleURL             string             `json:"style_url"`
	AccessToken          string             `json:"access_token,omitempty"`
}

// ViewportResponse - результат прижатия вида к рамке
type ViewportResponse struct {
	Requested domain.ViewState `json:"requested"`
	Clamped   domain.ViewState `json:"clamped"`
	Adjusted  bool             `json:"adjusted"`
}

// SessionState - проекция состояния оболочки для всех представлений
type SessionState struct {
	ID                  string                    `json:"id"`
	Search              string                    `json:"search"`
	Filters             domain.FilterSelection    `json:"filters"`
	SelectedID          *int64                    `json:"selected_id"`
	Panels              domain.Panels             `json:"panels"`
	Filtered            []LocationRow             `json:"filtered"`
	Markers             []Marker                  `json:"markers"`
	Selected            *LocationDetail           `json:"selected"`
	DetailVisibleMobile bool                      `json:"detail_visible_mobile"`
	Directive           *domain.RecenterDirective `json:"directive,omitempty"`
	CatalogTotal        int                       `json:"catalog_total"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}
