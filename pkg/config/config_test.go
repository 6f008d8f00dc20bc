package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideatracker/pkg/keymaps"
)

func TestLoad_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg, styles, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.UndoWindow)
	assert.True(t, cfg.SeedSamples)
	assert.Equal(t, "json", cfg.ExportFormat)
	assert.Equal(t, filepath.Join(dir, "nested", "styles.json"), cfg.StylesFile)
	assert.Equal(t, DefaultStyles(), styles)

	assert.FileExists(t, path)
	assert.FileExists(t, cfg.StylesFile)

	km := keymaps.BuildKeyMap(cfg.KeyMap)
	assert.Equal(t, []string{"a"}, km.AddIdea.Keys())
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	stylesPath := filepath.Join(dir, "colors.json")

	require.NoError(t, os.WriteFile(path, []byte(`{
  "undo_window": "8s",
  "seed_samples": false,
  "export_format": "yaml",
  "styles_file": "`+stylesPath+`",
  "keymap": {"AddIdea": "n"}
}`), 0644))
	require.NoError(t, os.WriteFile(stylesPath, []byte(`{"accent_color": "99"}`), 0644))

	cfg, styles, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 8*time.Second, cfg.UndoWindow)
	assert.False(t, cfg.SeedSamples)
	assert.Equal(t, "yaml", cfg.ExportFormat)
	assert.Equal(t, "99", styles.AccentColor)
	assert.Equal(t, DefaultStyles().ErrorColor, styles.ErrorColor)

	km := keymaps.BuildKeyMap(cfg.KeyMap)
	assert.Equal(t, []string{"n"}, km.AddIdea.Keys())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("IDEATRACKER_UNDO_WINDOW", "2s")

	cfg, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.UndoWindow)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, _, err := Load(viper.New(), path)
	assert.Error(t, err)
}

func TestLoad_NonPositiveWindowFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"undo_window": "0s"}`), 0644))

	cfg, _, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.UndoWindow)
}
