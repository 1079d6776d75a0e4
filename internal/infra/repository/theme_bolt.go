package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/NewsReader/internal/domain"
	bolt "go.etcd.io/bbolt"
)

var (
	preferencesBucket = []byte("preferences")
	themeKey          = []byte("theme")
)

// BoltThemeRepository persists the theme preference in a local bbolt file.
type BoltThemeRepository struct {
	db *bolt.DB
}

func NewBoltThemeRepository(dbPath string) (*BoltThemeRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(preferencesBucket)
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltThemeRepository{db: db}, nil
}

func (r *BoltThemeRepository) Close() error {
	return r.db.Close()
}

// LoadTheme returns light when nothing was saved yet.
func (r *BoltThemeRepository) LoadTheme() (domain.Theme, error) {
	theme := domain.ThemeLight
	err := r.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(preferencesBucket).Get(themeKey); data != nil {
			theme = domain.ParseTheme(string(data))
		}
		return nil
	})
	if err != nil {
		return domain.ThemeLight, fmt.Errorf("reading theme: %w", err)
	}
	return theme, nil
}

func (r *BoltThemeRepository) SaveTheme(theme domain.Theme) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(preferencesBucket).Put(themeKey, []byte(theme))
	})
}
