package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/NewsReader/internal/domain"
	"github.com/NewsReader/internal/infra/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRepo(t *testing.T, path string) *repository.BoltThemeRepository {
	t.Helper()
	repo, err := repository.NewBoltThemeRepository(path)
	require.NoError(t, err)
	return repo
}

func TestBoltThemeRepository_DefaultsToLight(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "reader.db"))
	defer repo.Close()

	theme, err := repo.LoadTheme()

	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestBoltThemeRepository_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reader.db")

	repo := openRepo(t, path)
	require.NoError(t, repo.SaveTheme(domain.ThemeDark))
	require.NoError(t, repo.Close())

	repo = openRepo(t, path)
	defer repo.Close()

	theme, err := repo.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestBoltThemeRepository_Toggle(t *testing.T) {
	repo := openRepo(t, filepath.Join(t.TempDir(), "reader.db"))
	defer repo.Close()

	current, err := repo.LoadTheme()
	require.NoError(t, err)
	require.NoError(t, repo.SaveTheme(current.Toggle()))
	require.NoError(t, repo.SaveTheme(domain.ThemeLight.Toggle().Toggle()))

	theme, err := repo.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
