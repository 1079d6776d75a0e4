package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the upstream credential.
const APIKeyEnv = "NEWS_API_KEY"

type Config struct {
	ServerPort              string
	ProxyPath               string
	UpstreamBaseURL         string
	UpstreamTimeout         time.Duration
	DefaultCountry          string
	BreakerFailureThreshold int
	CORSAllowedOrigins      []string
	OTLPEndpoint            string
	LogLevel                slog.Level
	ErrorLogSampleInterval  int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		ProxyPath:               getEnv("PROXY_PATH", "/api/news-proxy"),
		UpstreamBaseURL:         strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "https://newsapi.org"), "/"),
		UpstreamTimeout:         getDurationEnv("UPSTREAM_TIMEOUT", 0),
		DefaultCountry:          getEnv("DEFAULT_COUNTRY", "us"),
		BreakerFailureThreshold: getIntEnv("BREAKER_FAILURE_THRESHOLD", 0),
		CORSAllowedOrigins:      splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		OTLPEndpoint:            getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		LogLevel:                parseLevel(getEnv("LOG_LEVEL", "info")),
		ErrorLogSampleInterval:  getIntEnv("ERROR_LOG_SAMPLE_INTERVAL", 10),
	}
}

// APIKey reads the upstream credential from the environment on every call so
// a rotated or newly injected key is seen without a restart.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "1m", "60s")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo
	}
	return level
}
