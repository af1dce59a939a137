package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
	"github.com/connectflx/discovery-service/internal/repository/postgres"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// CatalogRepositoryTestSuite проверяет загрузку каталога из PostgreSQL
type CatalogRepositoryTestSuite struct {
	suite.Suite
	db   *postgres.DB
	repo repository.CatalogSource
	ctx  context.Context
}

func (s *CatalogRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5433"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "discovery_test"),
	)

	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()

	sqlxDB, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		s.T().Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	s.db = postgres.NewDBForTest(sqlxDB, zap.NewNop())
	s.Require().NoError(postgres.Migrate(s.ctx, s.db))
	s.repo = postgres.NewCatalogRepository(s.db)
}

func (s *CatalogRepositoryTestSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE locations")
	s.Require().NoError(err)
}

func (s *CatalogRepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		_, _ = s.db.ExecContext(s.ctx, "TRUNCATE locations")
		s.db.Close()
	}
}

func (s *CatalogRepositoryTestSuite) TestLoad_Empty() {
	locations, err := s.repo.Load(s.ctx)
	s.NoError(err)
	s.NotNil(locations)
	s.Empty(locations)
}

func (s *CatalogRepositoryTestSuite) TestLoad_RoundTripsArraysAndNullables() {
	seneca := "Seneca"
	seed := []domain.Location{
		{
			ID: 2, Name: "Ithaca Beer Co.", Type: domain.LocationTypeBrewery, Rating: 4.4,
			Address: "122 Ithaca Beer Dr, Ithaca, NY", Lat: 42.41, Lng: -76.53,
			Specialties: []string{"IPA", "Sour"}, Tags: []string{},
			Website: "https://ithacabeer.com",
		},
		{
			ID: 1, Name: "Hermann J. Wiemer", Type: domain.LocationTypeWinery, Rating: 4.8,
			Address: "3962 NY-14, Dundee, NY", Lat: 42.55, Lng: -76.93,
			Specialties: []string{"Riesling"}, Lake: &seneca, Tags: []string{"familyOwned"},
			Website: "https://wiemer.com", ImagePath: "/images/wiemer.jpg",
		},
	}
	s.Require().NoError(postgres.Seed(s.ctx, s.db, seed))

	locations, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(locations, 2)

	// Порядок по id
	s.Equal(int64(1), locations[0].ID)
	s.Equal(int64(2), locations[1].ID)

	s.Require().NotNil(locations[0].Lake)
	s.Equal("Seneca", *locations[0].Lake)
	s.Equal([]string{"familyOwned"}, locations[0].Tags)
	s.Equal("/images/wiemer.jpg", locations[0].ImagePath)

	s.Nil(locations[1].Lake)
	s.Equal([]string{"IPA", "Sour"}, locations[1].Specialties)
	s.Equal([]string{}, locations[1].Tags)
	s.Empty(locations[1].ImagePath)
}

func (s *CatalogRepositoryTestSuite) TestSeed_SkipsExistingIDs() {
	loc := domain.Location{ID: 5, Name: "First", Type: domain.LocationTypeCidery, Specialties: []string{}, Tags: []string{}}
	s.Require().NoError(postgres.Seed(s.ctx, s.db, []domain.Location{loc}))

	loc.Name = "Second"
	s.Require().NoError(postgres.Seed(s.ctx, s.db, []domain.Location{loc}))

	locations, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(locations, 1)
	s.Equal("First", locations[0].Name)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
