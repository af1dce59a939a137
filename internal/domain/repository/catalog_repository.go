package repository

import (
	"context"

	"github.com/connectflx/discovery-service/internal/domain"
)

// CatalogSource загружает записи каталога один раз при старте
type CatalogSource interface {
	// Load возвращает все локации в порядке источника
	Load(ctx context.Context) ([]domain.Location, error)
}
