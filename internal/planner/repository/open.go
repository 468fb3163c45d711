package repository

import (
	"context"
	"fmt"

	"studio-planner/internal/common/config"
)

// Open builds the storage backend named by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Storage {
	case "", "sqlite":
		db, err := OpenSQLite(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		store := NewSQLite(db)
		if err := store.Init(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("init sqlite: %w", err)
		}
		return store, nil
	case "redis":
		return NewRedis(ctx, RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
