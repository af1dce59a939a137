package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/connectflx/discovery-service/internal/domain"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	Directive DirectiveConfig
	Map       MapConfig
	Mapbox    MapboxConfig
	Detail    DetailConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type CatalogConfig struct {
	Source string // file | postgres
	Path   string // пусто = встроенный набор данных
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	Store         string // memory | redis
	TTL           time.Duration
	SweepInterval time.Duration
}

type DirectiveConfig struct {
	StreamEnabled bool
	Stream        string
	MaxLen        int64
}

type MapConfig struct {
	MinLng       float64
	MaxLng       float64
	MinLat       float64
	MaxLat       float64
	MinZoom      float64
	MaxZoom      float64
	InitialLng   float64
	InitialLat   float64
	InitialZoom  float64
	SelectZoom   float64
	DetailZoom   float64
	TransitionMS int
}

type MapboxConfig struct {
	AccessToken string
	StyleURL    string
}

type DetailConfig struct {
	PlaceholderImage string
}

type LogConfig struct {
	Level string
}

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("CATALOG_SOURCE", CatalogSourceFile)
	v.SetDefault("CATALOG_PATH", "")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL", 1800)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 60)

	v.SetDefault("DIRECTIVE_STREAM_ENABLED", false)
	v.SetDefault("DIRECTIVE_STREAM", "stream:selection:directive")
	v.SetDefault("DIRECTIVE_STREAM_MAXLEN", 10000)

	v.SetDefault("MAP_MIN_LNG", -77.7)
	v.SetDefault("MAP_MAX_LNG", -75.8)
	v.SetDefault("MAP_MIN_LAT", 42.0)
	v.SetDefault("MAP_MAX_LAT", 43.0)
	v.SetDefault("MAP_MIN_ZOOM", 7)
	v.SetDefault("MAP_MAX_ZOOM", 15)
	v.SetDefault("MAP_INITIAL_LNG", -76.5)
	v.SetDefault("MAP_INITIAL_LAT", 42.44)
	v.SetDefault("MAP_INITIAL_ZOOM", 8)
	v.SetDefault("MAP_SELECT_ZOOM", 12)
	v.SetDefault("MAP_DETAIL_ZOOM", 14)
	v.SetDefault("MAP_TRANSITION_MS", 500)
	v.SetDefault("MAP_STYLE_URL", "mapbox://styles/mapbox/outdoors-v12")

	v.SetDefault("DETAIL_PLACEHOLDER_IMAGE", "https://via.placeholder.com/400x200?text=No+Image")

	v.SetDefault("LOG_LEVEL", "info")
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile как Load, но с явным путём к файлу. Отсутствие файла не ошибка.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(v.GetString("CATALOG_SOURCE")),
			Path:   v.GetString("CATALOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Store:         strings.ToLower(v.GetString("SESSION_STORE")),
			TTL:           time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Directive: DirectiveConfig{
			StreamEnabled: v.GetBool("DIRECTIVE_STREAM_ENABLED"),
			Stream:        v.GetString("DIRECTIVE_STREAM"),
			MaxLen:        v.GetInt64("DIRECTIVE_STREAM_MAXLEN"),
		},
		Map: MapConfig{
			MinLng:       v.GetFloat64("MAP_MIN_LNG"),
			MaxLng:       v.GetFloat64("MAP_MAX_LNG"),
			MinLat:       v.GetFloat64("MAP_MIN_LAT"),
			MaxLat:       v.GetFloat64("MAP_MAX_LAT"),
			MinZoom:      v.GetFloat64("MAP_MIN_ZOOM"),
			MaxZoom:      v.GetFloat64("MAP_MAX_ZOOM"),
			InitialLng:   v.GetFloat64("MAP_INITIAL_LNG"),
			InitialLat:   v.GetFloat64("MAP_INITIAL_LAT"),
			InitialZoom:  v.GetFloat64("MAP_INITIAL_ZOOM"),
			SelectZoom:   v.GetFloat64("MAP_SELECT_ZOOM"),
			DetailZoom:   v.GetFloat64("MAP_DETAIL_ZOOM"),
			TransitionMS: v.GetInt("MAP_TRANSITION_MS"),
		},
		Mapbox: MapboxConfig{
			AccessToken: v.GetString("MAPBOX_ACCESS_TOKEN"),
			StyleURL:    v.GetString("MAP_STYLE_URL"),
		},
		Detail: DetailConfig{
			PlaceholderImage: v.GetString("DETAIL_PLACEHOLDER_IMAGE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("SESSION_STORE=redis requires REDIS_ENABLED=true")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}

	if c.Directive.StreamEnabled && !c.Redis.Enabled {
		return fmt.Errorf("DIRECTIVE_STREAM_ENABLED requires REDIS_ENABLED=true")
	}

	if c.Map.MinLng > c.Map.MaxLng || c.Map.MinLat > c.Map.MaxLat {
		return fmt.Errorf("map bounds are inverted")
	}
	if c.Map.MinZoom > c.Map.MaxZoom {
		return fmt.Errorf("map zoom range is inverted")
	}

	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// MapPolicy собирает ограничения карты из конфигурации
func (m MapConfig) MapPolicy() domain.MapPolicy {
	return domain.MapPolicy{
		Bounds: domain.BoundingBox{
			MinLng: m.MinLng,
			MinLat: m.MinLat,
			MaxLng: m.MaxLng,
			MaxLat: m.MaxLat,
		},
		MinZoom:            m.MinZoom,
		MaxZoom:            m.MaxZoom,
		Initial:            domain.ViewState{Lng: m.InitialLng, Lat: m.InitialLat, Zoom: m.InitialZoom},
		SelectZoom:         m.SelectZoom,
		DetailZoom:         m.DetailZoom,
		TransitionDuration: time.Duration(m.TransitionMS) * time.Millisecond,
	}
}
