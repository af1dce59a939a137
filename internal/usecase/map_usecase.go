package usecase

import (
	"context"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

// MapUseCase - параметры карты, прижатие вида и маркеры
type MapUseCase struct {
	catalog     *domain.Catalog
	policy      domain.MapPolicy
	presenter   *dto.Presenter
	styleURL    string
	accessToken string
}

func NewMapUseCase(
	catalog *domain.Catalog,
	policy domain.MapPolicy,
	presenter *dto.Presenter,
	styleURL string,
	accessToken string,
) *MapUseCase {
	return &MapUseCase{
		catalog:     catalog,
		policy:      policy,
		presenter:   presenter,
		styleURL:    styleURL,
		accessToken: accessToken,
	}
}

func (uc *MapUseCase) Config() dto.MapConfigResponse {
	return dto.MapConfigResponse{
		Bounds:               uc.policy.Bounds,
		MinZoom:              uc.policy.MinZoom,
		MaxZoom:              uc.policy.MaxZoom,
		Initial:              uc.policy.Initial,
		SelectZoom:           uc.policy.SelectZoom,
		DetailZoom:           uc.policy.DetailZoom,
		TransitionDurationMS: uc.policy.TransitionDuration.Milliseconds(),
		StyleURL:             uc.styleURL,
		AccessToken:          uc.accessToken,
	}
}

// ClampViewport прижимает предложенный вид. Без zoom берётся начальный масштаб.
func (uc *MapUseCase) ClampViewport(req dto.ViewportRequest) dto.ViewportResponse {
	requested := domain.ViewState{
		Lng:  *req.Lng,
		Lat:  *req.Lat,
		Zoom: uc.policy.Initial.Zoom,
	}
	if req.Zoom != nil {
		requested.Zoom = *req.Zoom
	}

	clamped := uc.policy.ClampView(requested)
	return dto.ViewportResponse{
		Requested: requested,
		Clamped:   clamped,
		Adjusted:  clamped != requested,
	}
}

// Markers - маркеры отфильтрованных локаций и размер всего каталога
func (uc *MapUseCase) Markers(ctx context.Context, q dto.LocationQuery) ([]dto.Marker, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	filtered := domain.FilterLocations(uc.catalog.All(), q.Search, q.Filters())
	return uc.presenter.Markers(filtered, nil), uc.catalog.Len(), nil
}
