package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const defaultDBName = ".newsreader.db"

// ClientConfig holds the reader's defaults. Command-line flags override it.
type ClientConfig struct {
	ProxyURL     string
	DBPath       string
	FetchTimeout time.Duration
	LogLevel     string
}

func LoadClient() *ClientConfig {
	_ = godotenv.Load()

	return &ClientConfig{
		ProxyURL:     getEnv("NEWSREADER_PROXY_URL", "http://localhost:8080/api/news-proxy"),
		DBPath:       getEnv("NEWSREADER_DB", defaultDBPath()),
		FetchTimeout: getDurationEnv("NEWSREADER_FETCH_TIMEOUT", 30*time.Second),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDBName
	}
	return filepath.Join(home, defaultDBName)
}
