// Package catalog загружает статический каталог локаций из файла или встроенного набора данных.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/connectflx/discovery-service/internal/domain"
	"github.com/connectflx/discovery-service/internal/domain/repository"
)

//go:embed data/locations.json
var embeddedLocations []byte

// Format of the catalog document
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

type fileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource создаёт источник каталога. Пустой path = встроенный набор данных.
// Формат определяется по расширению: .yaml/.yml - YAML, иначе JSON.
func NewFileSource(path string, logger *zap.Logger) repository.CatalogSource {
	return &fileSource{
		path:   path,
		logger: logger,
	}
}

func (s *fileSource) Load(ctx context.Context) ([]domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == "" {
		s.logger.Info("Loading embedded catalog")
		return Decode(embeddedLocations, FormatJSON)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	s.logger.Info("Loading catalog file", zap.String("path", s.path))
	return Decode(data, formatFromPath(s.path))
}

func formatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode разбирает документ вида {"locations": [...]}
func Decode(data []byte, format Format) ([]domain.Location, error) {
	var container domain.CatalogContainer

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &container); err != nil {
			return nil, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&container); err != nil {
			return nil, fmt.Errorf("decode json catalog: %w", err)
		}
	}

	if container.Locations == nil {
		return nil, fmt.Errorf("catalog document has no locations field")
	}

	return container.Locations, nil
}
