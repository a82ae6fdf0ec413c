package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Batch    BatchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

// EngineConfig mirrors the scoring tunables. Weights are fixed per
// deployment; changing them mid-flight would make rankings incomparable.
type EngineConfig struct {
	WeightSimilarity float64
	WeightKeyword    float64
	WeightExperience float64

	FullScoreYears       float64
	RecencyHalfLifeYears float64
	BreadthSaturation    int

	TaxonomyFile string
}

type BatchConfig struct {
	Workers     int
	ItemTimeout time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// .env is a developer convenience; absence is not an error
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),

		MigrationsDir: opt("DB_MIGRATIONS_DIR"),
	}
	if cfg.Database.MigrationsDir == "" {
		cfg.Database.MigrationsDir = "migrations"
	}

	cfg.Engine = EngineConfig{
		WeightSimilarity:     optFloat("MATCH_WEIGHT_SIMILARITY", 0.40),
		WeightKeyword:        optFloat("MATCH_WEIGHT_KEYWORD", 0.40),
		WeightExperience:     optFloat("MATCH_WEIGHT_EXPERIENCE", 0.20),
		FullScoreYears:       optFloat("MATCH_FULL_SCORE_YEARS", 8),
		RecencyHalfLifeYears: optFloat("MATCH_RECENCY_HALF_LIFE_YEARS", 4),
		BreadthSaturation:    optInt("MATCH_BREADTH_SATURATION", 12),
		TaxonomyFile:         opt("SKILL_TAXONOMY_FILE"),
	}

	cfg.Batch = BatchConfig{
		Workers:     optInt("BATCH_WORKERS", 8),
		ItemTimeout: optDuration("BATCH_ITEM_TIMEOUT", 5*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return v
}
