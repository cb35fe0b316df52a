package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("SYMBOARD_CONFIG", filepath.Join(dir, "config.toml"))
	t.Setenv("SYMBOARD_DATABASE_PATH", filepath.Join(dir, "data", "symboard.db"))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportListValidate(t *testing.T) {
	dir := setupEnv(t)

	// the starter boards audit clean
	out, err := execute(t, "validate")
	require.NoError(t, err, out)
	require.Contains(t, out, "boards ok")

	file := filepath.Join(dir, "board_extra.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
  "grid": {"rows": 1, "columns": 1, "order": [["b"]]},
  "buttons": [{"id": "b", "label": "nowhere", "load_board": {"id": "404"}}],
  "images": []
}`), 0o600))

	out, err = execute(t, "import", file)
	require.NoError(t, err, out)
	require.Contains(t, out, "imported board_extra")

	out, err = execute(t, "boards")
	require.NoError(t, err)
	require.Contains(t, out, "board_1_235 (home)")
	require.Contains(t, out, "board_extra")

	out, err = execute(t, "validate")
	require.Error(t, err)
	require.Contains(t, out, "dangling     board_extra -> board_404")
	require.Contains(t, out, "unreachable  board_extra")

	out, err = execute(t, "boards", "rm", "board_extra")
	require.NoError(t, err)
	require.Contains(t, out, "removed board_extra")

	out, err = execute(t, "boards", "rm", "board_extra")
	require.Error(t, err)
	require.Contains(t, out, "not found board_extra")
	require.NotContains(t, out, "removed board_extra")

	out, err = execute(t, "validate")
	require.NoError(t, err, out)
}

func TestImportRejectsBrokenFile(t *testing.T) {
	dir := setupEnv(t)
	file := filepath.Join(dir, "board_bad.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"grid": {"rows": 2, "columns": 1, "order": [[null]]}, "buttons": []}`), 0o600))

	out, err := execute(t, "import", file)
	require.Error(t, err)
	require.Contains(t, out, "declares 2 rows")

	out, err = execute(t, "import", "--force", file)
	require.NoError(t, err, out)
}

func TestInitAndReset(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, "init", "--home", "board_start")
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(dir, "config.toml"))
	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "board_start")

	out, err = execute(t, "reset", "--seed")
	require.NoError(t, err)
	require.Contains(t, out, "boards deleted")
	require.Contains(t, out, "starter boards installed")

	out, err = execute(t, "boards")
	require.NoError(t, err)
	require.Contains(t, out, "board_start (home)")
}
