package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/pkg/errors"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

// CatalogUseCase - чтение каталога: stateless-фильтрация, карточки, фильтры
type CatalogUseCase struct {
	catalog   *domain.Catalog
	presenter *dto.Presenter
	logger    *zap.Logger

	facetsOnce sync.Once
	facets     dto.FacetsResponse
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(catalog *domain.Catalog, presenter *dto.Presenter, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalog:   catalog,
		presenter: presenter,
		logger:    logger,
	}
}

// List - отфильтрованный список в порядке каталога
func (uc *CatalogUseCase) List(ctx context.Context, q dto.LocationQuery) (*dto.LocationListResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filtered := domain.FilterLocations(uc.catalog.All(), q.Search, q.Filters())

	return &dto.LocationListResponse{
		Locations:    uc.presenter.Rows(filtered, nil),
		Total:        len(filtered),
		CatalogTotal: uc.catalog.Len(),
	}, nil
}

// Get - карточка локации
func (uc *CatalogUseCase) Get(ctx context.Context, id int64) (*dto.LocationDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loc := uc.catalog.Resolve(id)
	if loc == nil {
		return nil, errors.ErrLocationNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	return uc.presenter.Detail(loc), nil
}

// Facets - значения фильтров. Каталог неизменяем, поэтому результат считается один раз.
func (uc *CatalogUseCase) Facets(ctx context.Context) dto.FacetsResponse {
	uc.facetsOnce.Do(func() {
		f := domain.DeriveFacets(uc.catalog.All())
		uc.facets = dto.FacetsResponse{
			Specialties: f.Specialties,
			Lakes:       f.Lakes,
			Tags:        f.Tags,
			Options:     dto.FacetOptionsFrom(f),
		}
		uc.logger.Debug("Facets derived",
			zap.Int("specialties", len(f.Specialties)),
			zap.Int("lakes", len(f.Lakes)),
			zap.Int("tags", len(f.Tags)),
		)
	})
	return uc.facets
}

// Tags - словарь тегов
func (uc *CatalogUseCase) Tags(ctx context.Context) []dto.TagVocabularyEntry {
	return dto.TagVocabularyList()
}
