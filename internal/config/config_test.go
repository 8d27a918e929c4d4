package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiptu/mynotes/internal/textres"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yml")

	cfg, err := Load(path)
	require.NoError(t, err)

	// The default must have been materialized on disk.
	_, err = os.Stat(path)
	require.NoError(t, err)

	// And the shipped defaults must pass required-key validation.
	res, err := cfg.Resources()
	require.NoError(t, err)
	assert.Equal(t, "My Notes", res.Title(textres.TitleMainMenu))
	assert.Equal(t, "Back", res.Button(textres.ButtonBack))
}

func TestLoadDefaultDatabasePath(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notes.db"), cfg.Database.Path)
}

func TestLoadEnvOverridesDatabasePath(t *testing.T) {
	t.Setenv("MYNOTES_DB", "/tmp/override.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("titles: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestResourcesFailsOnMissingRequiredKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	// A config missing nearly everything must abort startup, naming the key.
	require.NoError(t, os.WriteFile(path, []byte(`
titles:
  main_menu: "My Notes"
messages: {}
buttons: {}
icons: {}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.Resources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing or invalid")
}
