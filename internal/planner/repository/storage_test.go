package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studio-planner/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage checks the behaviour every backend shares.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "pottery-studio-equipment")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "pottery-studio-equipment", `[]`))
	require.NoError(t, s.Set(ctx, "pottery-studio-width", "12"))

	v, err := s.Get(ctx, "pottery-studio-equipment")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Set(ctx, "pottery-studio-width", "14.5"))
	v, err = s.Get(ctx, "pottery-studio-width")
	require.NoError(t, err)
	assert.Equal(t, "14.5", v)

	require.NoError(t, s.Delete(ctx, "pottery-studio-width"))
	_, err = s.Get(ctx, "pottery-studio-width")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Delete(ctx, "never-written"))

	require.NoError(t, s.Clear(ctx))
	_, err = s.Get(ctx, "pottery-studio-equipment")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage(t *testing.T) {
	m := NewMemory()
	exerciseStorage(t, m)
	assert.Equal(t, 0, m.Len())
	assert.NoError(t, m.Close())
}

func TestSQLiteStorage(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "studio.db"))
	require.NoError(t, err)

	s := NewSQLite(db)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { s.Close() })

	exerciseStorage(t, s)
}

func TestSQLiteInitIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")
	ctx := context.Background()

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	s := NewSQLite(db)
	require.NoError(t, s.Init(ctx))
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	s = NewSQLite(db)
	require.NoError(t, s.Init(ctx))
	t.Cleanup(func() { s.Close() })

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	r, err := NewRedis(context.Background(), RedisConfig{Addr: addr, Prefix: "studio-test"})
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	exerciseStorage(t, r)
}

func TestRedisKeyPrefix(t *testing.T) {
	r := NewRedisFromClient(nil, "pottery-studio")
	assert.Equal(t, "pottery-studio:width", r.key("width"))

	r = NewRedisFromClient(nil, "")
	assert.Equal(t, "width", r.key("width"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Storage = "memory"
	s, err := Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	cfg.Storage = "sqlite"
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "studio.db")
	s, err = Open(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	cfg.Storage = "etcd"
	_, err = Open(ctx, cfg)
	assert.ErrorContains(t, err, "unknown storage")
}
