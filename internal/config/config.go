package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env        string
	ListenAddr string
	LogLevel   string

	// Postgres, used only for the direct maintenance operations.
	DatabaseURL string

	// Upstream Cooler API.
	UpstreamBaseURL string
	UpstreamToken   string
	UpstreamRPS     int
	RequestTimeout  time.Duration

	// Static password for X-Admin-Password gated maintenance routes.
	AdminPassword string

	// Magic link issuing.
	MagicLinkSecret  string
	MagicLinkBaseURL string
	MagicLinkTTL     time.Duration

	// Synthetic traffic generation. Zero workers disables the loop.
	TrafficWorkers  int
	TrafficInterval time.Duration
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		UpstreamBaseURL:  getenv("COOLER_API_URL", "https://api.cooler.dev"),
		UpstreamToken:    os.Getenv("COOLER_API_TOKEN"),
		UpstreamRPS:      getenvInt("COOLER_API_RPS", 10),
		RequestTimeout:   getenvDuration("REQUEST_TIMEOUT", 30*time.Second),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		MagicLinkSecret:  os.Getenv("MAGIC_LINK_SECRET"),
		MagicLinkBaseURL: getenv("MAGIC_LINK_BASE_URL", "https://app.cooler.dev/impersonate"),
		MagicLinkTTL:     getenvDuration("MAGIC_LINK_TTL", 15*time.Minute),
		TrafficWorkers:   getenvInt("TRAFFIC_WORKERS", 0),
		TrafficInterval:  getenvDuration("TRAFFIC_INTERVAL", 5*time.Second),
	}
	if cfg.UpstreamToken == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("COOLER_API_TOKEN not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
