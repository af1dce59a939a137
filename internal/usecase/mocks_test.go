package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/connectflx/discovery-service/internal/domain"
)

// MockSessionRepository is a mock of SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(ctx context.Context, s *domain.Session, ttl time.Duration) error {
	args := m.Called(ctx, s, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDirectivePublisher is a mock of DirectivePublisher
type MockDirectivePublisher struct {
	mock.Mock
}

func (m *MockDirectivePublisher) Publish(ctx context.Context, event domain.SelectionChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func ptrInt64(v int64) *int64 { return &v }
func ptrBool(v bool) *bool    { return &v }
func ptrString(v string) *string {
	return &v
}

// scenarioCatalog - каталог из двух локаций: винодельня у озера и пивоварня без озера
func scenarioCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog([]domain.Location{
		{
			ID: 1, Type: domain.LocationTypeWinery, Name: "Lake View Winery",
			Lat: 42.6, Lng: -76.9,
			Specialties: []string{"Riesling"}, Lake: ptrString("Seneca"), Tags: []string{"lakeView"},
		},
		{
			ID: 2, Type: domain.LocationTypeBrewery, Name: "Hop House",
			Lat: 42.4, Lng: -76.5,
			Specialties: []string{"IPA"}, Lake: nil, Tags: []string{"beer"},
		},
	})
	require.NoError(t, err)
	return c
}
