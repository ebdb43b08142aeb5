package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: "5432", User: "trivia", Password: "secret", DBName: "quiz"}
	assert.Equal(t, "postgres://trivia:secret@db:5432/quiz", cfg.DSN())

	cfg.URL = "postgres://other@remote/trivia"
	assert.Equal(t, "postgres://other@remote/trivia", cfg.DSN())
}

func TestSQLiteSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trivia.db")

	for i := 0; i < 2; i++ {
		db, err := ConnectSQLite(path, true)
		require.NoError(t, err)

		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count))
		assert.Equal(t, len(DefaultCategories()), count)
		require.NoError(t, db.Close())
	}
}

func TestSQLiteWithoutSeed(t *testing.T) {
	db, err := ConnectSQLite(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count))
	assert.Zero(t, count)
}

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	mr.Close()
	_, err = ConnectRedis(context.Background(), RedisConfig{Addr: mr.Addr()})
	assert.Error(t, err)
}
