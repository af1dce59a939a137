package dto

import "github.com/connectflx/discovery-service/internal/domain"

// LocationQuery - параметры stateless-фильтрации (query string списков и маркеров)
type LocationQuery struct {
	Search      string   `validate:"max=200"`
	Types       []string `validate:"omitempty,max=4,dive,location_type"`
	Specialties []string `validate:"omitempty,max=50,dive,max=100"`
	Lakes       []string `validate:"omitempty,max=50,dive,max=100"`
	Tags        []string `validate:"omitempty,max=50,dive,max=100"`
}

// Filters converts query to domain filter selection
func (q LocationQuery) Filters() domain.FilterSelection {
	return domain.FilterSelection{
		Types:       q.Types,
		Specialties: q.Specialties,
		Lakes:       q.Lakes,
		Tags:        q.Tags,
	}.Normalize()
}

// SetSearchRequest - изменение строки поиска
type SetSearchRequest struct {
	Term string `json:"term" validate:"max=200"`
}

// SetFiltersRequest - полная замена выбранных фильтров
type SetFiltersRequest struct {
	Types       []string `json:"types" validate:"omitempty,max=4,dive,location_type"`
	Specialties []string `json:"specialties" validate:"omitempty,max=50,dive,max=100"`
	Lakes       []string `json:"lakes" validate:"omitempty,max=50,dive,max=100"`
	Tags        []string `json:"tags" validate:"omitempty,max=50,dive,max=100"`
}

// Filters converts request to domain filter selection
func (r SetFiltersRequest) Filters() domain.FilterSelection {
	return domain.FilterSelection{
		Types:       r.Types,
		Specialties: r.Specialties,
		Lakes:       r.Lakes,
		Tags:        r.Tags,
	}.Normalize()
}

// SelectRequest - выбор локации. ID == nil сбрасывает выбор.
type SelectRequest struct {
	ID               *int64 `json:"id"`
	Source           string `json:"source" validate:"required,selection_source"`
	PreserveViewport bool   `json:"preserve_viewport"`
}

// SetPanelsRequest - частичное обновление панелей, nil = без изменений
type SetPanelsRequest struct {
	FiltersOpen *bool `json:"filters_open"`
	ListOpen    *bool `json:"list_open"`
}

// ViewportRequest - предложенный виджетом карты вид
type ViewportRequest struct {
	Lng  *float64 `json:"lng" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required"`
	Zoom *float64 `json:"zoom"`
}
