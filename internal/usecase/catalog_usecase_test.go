package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	apperrors "github.com/connectflx/discovery-service/internal/pkg/errors"
	"github.com/connectflx/discovery-service/internal/usecase"
	"github.com/connectflx/discovery-service/internal/usecase/dto"
)

func newCatalogUseCase(t *testing.T) *usecase.CatalogUseCase {
	presenter := dto.NewPresenter("/images/placeholder.jpg", domain.DefaultMapPolicy())
	return usecase.NewCatalogUseCase(scenarioCatalog(t), presenter, zap.NewNop())
}

func TestCatalogUseCase_List(t *testing.T) {
	uc := newCatalogUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   dto.LocationQuery
		wantIDs []int64
	}{
		{name: "no filters", query: dto.LocationQuery{}, wantIDs: []int64{1, 2}},
		{name: "type winery", query: dto.LocationQuery{Types: []string{"winery"}}, wantIDs: []int64{1}},
		{name: "search hop ignores empty types", query: dto.LocationQuery{Search: "hop"}, wantIDs: []int64{2}},
		{name: "search by specialty", query: dto.LocationQuery{Search: "ries"}, wantIDs: []int64{1}},
		{name: "lake excludes lakeless", query: dto.LocationQuery{Lakes: []string{"Seneca"}}, wantIDs: []int64{1}},
		{name: "tags are not applied", query: dto.LocationQuery{Tags: []string{"beer"}}, wantIDs: []int64{1, 2}},
		{name: "nothing matches", query: dto.LocationQuery{Search: "mead"}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.List(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]int64, 0, len(resp.Locations))
			for _, row := range resp.Locations {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Total)
			assert.Equal(t, 2, resp.CatalogTotal)
		})
	}
}

func TestCatalogUseCase_Get(t *testing.T) {
	uc := newCatalogUseCase(t)
	ctx := context.Background()

	detail, err := uc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Hop House", detail.Name)
	assert.Nil(t, detail.Lake)
	assert.Equal(t, "/images/placeholder.jpg", detail.ImageURL)

	_, err = uc.Get(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
}

func TestCatalogUseCase_Facets(t *testing.T) {
	uc := newCatalogUseCase(t)
	ctx := context.Background()

	f := uc.Facets(ctx)
	assert.Equal(t, []string{"IPA", "Riesling"}, f.Specialties)
	assert.Equal(t, []string{"Seneca"}, f.Lakes)
	assert.Equal(t, []string{"beer", "lakeView"}, f.Tags)
	assert.Len(t, f.Options.Types, 4)

	// Повторный вызов возвращает тот же результат
	assert.Equal(t, f, uc.Facets(ctx))
}

func TestCatalogUseCase_CancelledContext(t *testing.T) {
	uc := newCatalogUseCase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.List(ctx, dto.LocationQuery{})
	assert.ErrorIs(t, err, context.Canceled)
}
