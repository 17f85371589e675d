package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_VALUE=from-file\n"), 0o600))

	t.Setenv("ENV_PATH", "")
	t.Setenv("CALC_TEST_VALUE", "")
	os.Unsetenv("CALC_TEST_VALUE")

	require.NoError(t, LoadDotEnv("local", path))
	assert.Equal(t, "from-file", os.Getenv("CALC_TEST_VALUE"))
}

func TestLoadDotEnv_ENVPathOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("CALC_OVERRIDE=yes\n"), 0o600))

	t.Setenv("ENV_PATH", path)
	t.Setenv("CALC_OVERRIDE", "")
	os.Unsetenv("CALC_OVERRIDE")

	require.NoError(t, LoadDotEnv("local", filepath.Join(dir, "missing.env")))
	assert.Equal(t, "yes", os.Getenv("CALC_OVERRIDE"))
}

func TestLoadDotEnv_Missing(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "nope.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}

func TestGet(t *testing.T) {
	t.Setenv("CALC_GET", "")
	assert.Equal(t, "fallback", Get("CALC_GET", "fallback"))
	t.Setenv("CALC_GET", "set")
	assert.Equal(t, "set", Get("CALC_GET", "fallback"))
}
