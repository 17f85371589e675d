package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
		assert.Equal(t, GracefulShutdownTimeout, cfg.ShutdownTimeout)
	})

	t.Run("explicit", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", "http://a.local, ,http://b.local")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CorsOrigins)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, port := range []string{"abc", "0", "70000"} {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err, port)
		}
	})

	t.Run("invalid shutdown timeout", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
	})
}
