package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "trivia", cfg.DB.Name)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, "trivia:questions", cfg.Redis.Channel)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/trivia-test.db")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/trivia")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("QUESTIONS_PER_PAGE", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/trivia-test.db", cfg.SQLite.Path)
	assert.Equal(t, "postgres://u:p@db:5432/trivia", cfg.DB.URL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 25, cfg.Pagination.PageSize)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorIs(t, err, ErrUnknownStoreDriver)
}

func TestValidatePageSize(t *testing.T) {
	cfg := &Config{Store: Store{Driver: DriverMemory}}
	assert.Error(t, cfg.Validate())

	cfg.Pagination.PageSize = 5
	assert.NoError(t, cfg.Validate())
}
