// Package store selects and opens the configured vacation.Store backend.
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/config"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/kv"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/memory"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/sqlite"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the backend named by cfg.Store. The caller must Close the
// returned closer when done.
func Open(ctx context.Context, cfg config.Config) (vacation.Store, io.Closer, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), nopCloser{}, nil

	case config.StoreSQLite:
		s, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.StoreRedis:
		cache := kv.NewRedisCache(cfg.RedisAddr)
		if err := cache.Ping(ctx); err != nil {
			cache.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return kv.New(cache), cache, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
