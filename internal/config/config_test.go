package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SYMBOARD_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "board_1_235", cfg.Board.Home)
	require.Equal(t, DriverSQLite, cfg.Store.Driver)
	require.Equal(t, filepath.Join(home, ".local", "share", "symboard", "symboard.db"), cfg.Database.Path)
	require.True(t, cfg.Speech.Enabled)
	require.Equal(t, "espeak-ng", cfg.Speech.Command)
	require.Equal(t, "en-US", cfg.Speech.Language)
	require.Equal(t, 175, cfg.Speech.Rate)
	require.Equal(t, 8, cfg.UI.LabelWidth)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "symboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[board]
home = "board_top"

[store]
driver = "dir"
dir = "/srv/boards"

[ui]
label_width = 12
`), 0o600))
	t.Setenv("SYMBOARD_CONFIG", path)
	t.Setenv("SYMBOARD_SPEECH_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "board_top", cfg.Board.Home)
	require.Equal(t, DriverDir, cfg.Store.Driver)
	require.Equal(t, "/srv/boards", cfg.Store.Dir)
	require.Equal(t, 12, cfg.UI.LabelWidth)
	require.False(t, cfg.Speech.Enabled)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store]\ndriver = \"s3\"\n"), 0o600))
	t.Setenv("SYMBOARD_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "unknown store.driver")

	require.NoError(t, os.WriteFile(path, []byte("[store\n"), 0o600))
	_, err = Load()
	require.ErrorContains(t, err, "read config")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	t.Setenv("SYMBOARD_CONFIG", filepath.Join(dir, "nested", "config.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Board.Home = "board_saved"
	cfg.Speech.Rate = 140
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}
