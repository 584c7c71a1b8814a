package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	LogLevel       string
	HTTPAddr       string
	AuthToken      string
	AuthServiceURL string
	StorageBackend string
	PostgresDSN    string
	SQLitePath     string
	SnapshotFile   string
	CoachURL       string
	CoachTimeout   time.Duration
	AnalyticsTZ    string
	WeekStart      time.Weekday
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:            getEnv("APP_ENV", "development"),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			HTTPAddr:       getEnv("HTTP_ADDR", ":8088"),
			AuthToken:      getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
			StorageBackend: getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:    getEnv("POSTGRES_DSN", ""),
			SQLitePath:     getEnv("SQLITE_PATH", "data/quickkt.db"),
			SnapshotFile:   getEnv("SNAPSHOT_FILE", "data/snapshot.json"),
			CoachURL:       getEnv("COACH_URL", ""),
			CoachTimeout:   getDuration("COACH_TIMEOUT", 15*time.Second),
			AnalyticsTZ:    getEnv("ANALYTICS_TZ", "UTC"),
			WeekStart:      getWeekday("WEEK_START", time.Monday),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case "file":
		if c.SnapshotFile == "" {
			return errors.New("File storage requires SNAPSHOT_FILE to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if _, err := time.LoadLocation(c.AnalyticsTZ); err != nil {
		return errors.New("ANALYTICS_TZ is not a valid IANA timezone: " + c.AnalyticsTZ)
	}
	return nil
}

// AnalyticsLocation is guaranteed to succeed after Validate().
func (c *Config) AnalyticsLocation() *time.Location {
	loc, err := time.LoadLocation(c.AnalyticsTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getWeekday(key string, fallback time.Weekday) time.Weekday {
	switch strings.ToLower(os.Getenv(key)) {
	case "sunday":
		return time.Sunday
	case "monday":
		return time.Monday
	case "saturday":
		return time.Saturday
	case "":
		return fallback
	default:
		return fallback
	}
}
