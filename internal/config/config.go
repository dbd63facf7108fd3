package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the taste pipeline.
type Config struct {
	DB       DBConfig
	Redis    RedisConfig
	TMDB     TMDBConfig
	Files    FileConfig
	Pipeline PipelineConfig
	Port     string
	// APIToken guards state-changing HTTP routes when set.
	APIToken string

	RateLimitMax           int
	RateLimitWindowSeconds int
}

// DBConfig holds PostgreSQL configuration.
type DBConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SSLRootCert string
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	APIKey          string
	BaseURL         string
	RequestInterval time.Duration
}

// FileConfig holds the locations of the scraped and derived data files.
type FileConfig struct {
	WatchedShows  string
	EnrichedShows string
	Reviews       string
	TasteProfile  string
}

// PipelineConfig holds the caps used while gathering candidates.
type PipelineConfig struct {
	// SimilarSourceLimit is how many watched shows with a TMDB id are used
	// as seeds for "similar show" lookups.
	SimilarSourceLimit int
	// TrendingLimit caps the weekly trending list.
	TrendingLimit int
	// CandidateLimit caps the whole candidate batch.
	CandidateLimit int
}

const (
	DefaultSimilarSourceLimit = 10
	DefaultTrendingLimit      = 20
	DefaultCandidateLimit     = 50
	DefaultRequestInterval    = 250 * time.Millisecond
)

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	intervalMS, err := getEnvInt("TMDB_REQUEST_INTERVAL_MS", int(DefaultRequestInterval/time.Millisecond))
	if err != nil {
		return nil, err
	}
	similar, err := getEnvInt("SIMILAR_SOURCE_LIMIT", DefaultSimilarSourceLimit)
	if err != nil {
		return nil, err
	}
	trending, err := getEnvInt("TRENDING_LIMIT", DefaultTrendingLimit)
	if err != nil {
		return nil, err
	}
	candidates, err := getEnvInt("CANDIDATE_LIMIT", DefaultCandidateLimit)
	if err != nil {
		return nil, err
	}
	rateLimitMax, err := getEnvInt("RATE_LIMIT_MAX", 100)
	if err != nil {
		return nil, err
	}
	rateLimitWindow, err := getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "tv_tracking"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		TMDB: TMDBConfig{
			APIKey:          getEnv("TMDB_API_KEY", ""),
			BaseURL:         getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			RequestInterval: time.Duration(intervalMS) * time.Millisecond,
		},
		Files: FileConfig{
			WatchedShows:  getEnv("WATCHED_SHOWS_FILE", "data/final_watched_shows.csv"),
			EnrichedShows: getEnv("ENRICHED_SHOWS_FILE", "data/enriched_watched_shows.csv"),
			Reviews:       getEnv("REVIEWS_FILE", "data/serializd_reviews.csv"),
			TasteProfile:  getEnv("TASTE_PROFILE_FILE", "data/taste_analysis.json"),
		},
		Pipeline: PipelineConfig{
			SimilarSourceLimit: similar,
			TrendingLimit:      trending,
			CandidateLimit:     candidates,
		},
		Port:                   getEnv("SERVER_PORT", "8080"),
		APIToken:               getEnv("API_TOKEN", ""),
		RateLimitMax:           rateLimitMax,
		RateLimitWindowSeconds: rateLimitWindow,
	}

	if err := cfg.Pipeline.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects caps that would make candidate gathering a no-op.
func (p PipelineConfig) Validate() error {
	if p.SimilarSourceLimit < 0 {
		return fmt.Errorf("SIMILAR_SOURCE_LIMIT must not be negative, got %d", p.SimilarSourceLimit)
	}
	if p.TrendingLimit < 0 {
		return fmt.Errorf("TRENDING_LIMIT must not be negative, got %d", p.TrendingLimit)
	}
	if p.CandidateLimit <= 0 {
		return fmt.Errorf("CANDIDATE_LIMIT must be positive, got %d", p.CandidateLimit)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
