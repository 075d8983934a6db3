package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	s, err := config.LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "postgres", s.Database.Driver)
	assert.Equal(t, 8080, s.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, s.HTTP.AllowedOrigins)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, config.DefaultAreaMapping, s.Review.AreaMapping)
}

func TestLoadSettingsEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_DSN", "postgres://legacy")
	t.Setenv("JWT_SECRET", "legacy-secret")
	t.Setenv("LIFEBOARD_HTTP_PORT", "9090")
	t.Setenv("LIFEBOARD_LOG_LEVEL", "debug")

	s, err := config.LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, "postgres://legacy", s.Database.DSN)
	assert.Equal(t, "legacy-secret", s.Auth.JWTSecret)
	assert.Equal(t, 9090, s.HTTP.Port)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboard.yaml")
	yaml := `
database:
  driver: sqlite
  dsn: file:lifeboard.db
http:
  allowed_origins:
    - https://board.example.com
review:
  area_mapping:
    Writing: CONTENT
    Budget: FINANCES
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", s.Database.Driver)
	assert.Equal(t, "file:lifeboard.db", s.Database.DSN)
	assert.Equal(t, []string{"https://board.example.com"}, s.HTTP.AllowedOrigins)
	// viper lowercases map keys
	assert.Equal(t, map[string]string{"writing": "CONTENT", "budget": "FINANCES"}, s.Review.AreaMapping)
}

func TestLoadSettingsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unclosed"), 0o600))

	_, err := config.LoadSettings(path)
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
