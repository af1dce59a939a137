package domain

import "time"

// BoundingBox - прямоугольник допустимых координат центра карты
type BoundingBox struct {
	MinLng float64 `json:"min_lng"`
	MinLat float64 `json:"min_lat"`
	MaxLng float64 `json:"max_lng"`
	MaxLat float64 `json:"max_lat"`
}

// Contains reports whether the point lies inside the box (edges included)
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lng >= b.MinLng && lng <= b.MaxLng && lat >= b.MinLat && lat <= b.MaxLat
}

// ViewState - центр и масштаб карты
type ViewState struct {
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
	Zoom float64 `json:"zoom"`
}

// MapPolicy - ограничения и константы карты
type MapPolicy struct {
	Bounds             BoundingBox
	MinZoom            float64
	MaxZoom            float64
	Initial            ViewState
	SelectZoom         float64
	DetailZoom         float64
	TransitionDuration time.Duration
}

// DefaultMapPolicy - регион Finger Lakes
func DefaultMapPolicy() MapPolicy {
	return MapPolicy{
		Bounds: BoundingBox{
			MinLng: -77.7,
			MinLat: 42.0,
			MaxLng: -75.8,
			MaxLat: 43.0,
		},
		MinZoom:            7,
		MaxZoom:            15,
		Initial:            ViewState{Lng: -76.5, Lat: 42.44, Zoom: 8},
		SelectZoom:         12,
		DetailZoom:         14,
		TransitionDuration: 500 * time.Millisecond,
	}
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampCenter покомпонентно прижимает центр к рамке. Масштаб не меняется.
func (p MapPolicy) ClampCenter(v ViewState) ViewState {
	v.Lng = Clamp(v.Lng, p.Bounds.MinLng, p.Bounds.MaxLng)
	v.Lat = Clamp(v.Lat, p.Bounds.MinLat, p.Bounds.MaxLat)
	return v
}

// ClampView прижимает центр и масштаб (масштаб - так же, как это делает min/max виджета)
func (p MapPolicy) ClampView(v ViewState) ViewState {
	v = p.ClampCenter(v)
	v.Zoom = Clamp(v.Zoom, p.MinZoom, p.MaxZoom)
	return v
}

// RecenterDirective - указание карте перецентрироваться на выбранную локацию.
// Это директива представления, а не поле состояния.
type RecenterDirective struct {
	LocationID           int64   `json:"location_id"`
	Lng                  float64 `json:"lng"`
	Lat                  float64 `json:"lat"`
	Zoom                 float64 `json:"zoom"`
	TransitionDurationMS int64   `json:"transition_duration_ms"`
}

// RecenterOn строит директиву для локации
func (p MapPolicy) RecenterOn(loc *Location) RecenterDirective {
	return RecenterDirective{
		LocationID:           loc.ID,
		Lng:                  loc.Lng,
		Lat:                  loc.Lat,
		Zoom:                 p.SelectZoom,
		TransitionDurationMS: p.TransitionDuration.Milliseconds(),
	}
}
