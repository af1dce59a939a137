package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
)

// Schema - таблица каталога. Специализации и теги хранятся в text[].
const Schema = `
CREATE TABLE IF NOT EXISTS locations (
	id          BIGINT PRIMARY KEY,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL CHECK (type IN ('winery', 'brewery', 'cidery', 'distillery')),
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
	address     TEXT NOT NULL DEFAULT '',
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	specialties TEXT[] NOT NULL DEFAULT '{}',
	lake        TEXT,
	tags        TEXT[] NOT NULL DEFAULT '{}',
	website     TEXT NOT NULL DEFAULT '',
	image_path  TEXT
)`

// locationRow - строка таблицы locations
type locationRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	Rating      float64        `db:"rating"`
	Address     string         `db:"address"`
	Lat         float64        `db:"lat"`
	Lng         float64        `db:"lng"`
	Specialties pq.StringArray `db:"specialties"`
	Lake        sql.NullString `db:"lake"`
	Tags        pq.StringArray `db:"tags"`
	Website     string         `db:"website"`
	ImagePath   sql.NullString `db:"image_path"`
}

func (r locationRow) toDomain() domain.Location {
	loc := domain.Location{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		Rating:      r.Rating,
		Address:     r.Address,
		Lat:         r.Lat,
		Lng:         r.Lng,
		Specialties: []string(r.Specialties),
		Tags:        []string(r.Tags),
		Website:     r.Website,
	}
	if loc.Specialties == nil {
		loc.Specialties = []string{}
	}
	if loc.Tags == nil {
		loc.Tags = []string{}
	}
	if r.Lake.Valid && r.Lake.String != "" {
		lake := r.Lake.String
		loc.Lake = &lake
	}
	if r.ImagePath.Valid {
		loc.ImagePath = r.ImagePath.String
	}
	return loc
}

type catalogRepository struct {
	db *DB
}

// NewCatalogRepository - источник каталога из таблицы locations
func NewCatalogRepository(db *DB) repository.CatalogSource {
	return &catalogRepository{db: db}
}

// Load читает весь каталог, порядок - по id
func (r *catalogRepository) Load(ctx context.Context) ([]domain.Location, error) {
	const query = `
		SELECT id, name, type, rating, address, lat, lng,
		       specialties, lake, tags, website, image_path
		FROM locations
		ORDER BY id`

	var rows []locationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.db.logger.Error("Failed to load catalog", zap.Error(err))
		return nil, fmt.Errorf("select locations: %w", err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, row.toDomain())
	}

	r.db.logger.Info("Catalog loaded from PostgreSQL", zap.Int("count", len(locations)))
	return locations, nil
}

// Migrate создаёт таблицу каталога, если её нет
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create locations table: %w", err)
	}
	return nil
}

// Seed вставляет локации, существующие id пропускаются
func Seed(ctx context.Context, db *DB, locations []domain.Location) error {
	const query = `
		INSERT INTO locations (id, name, type, rating, address, lat, lng, specialties, lake, tags, website, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO NOTHING`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, loc := range locations {
		var lake, image sql.NullString
		if loc.HasLake() {
			lake = sql.NullString{String: *loc.Lake, Valid: true}
		}
		if loc.ImagePath != "" {
			image = sql.NullString{String: loc.ImagePath, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, query,
			loc.ID, loc.Name, loc.Type, loc.Rating, loc.Address, loc.Lat, loc.Lng,
			pq.StringArray(loc.Specialties), lake, pq.StringArray(loc.Tags), loc.Website, image,
		); err != nil {
			return fmt.Errorf("insert location %d: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
