package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/config"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/memory"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/sqlite"
)

func TestOpen_Memory(t *testing.T) {
	s, closer, err := store.Open(context.Background(), config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &memory.Store{}, s)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := config.Config{Store: config.StoreSQLite, DBPath: filepath.Join(t.TempDir(), "v.db")}
	s, closer, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closer.Close()
	assert.IsType(t, &sqlite.Store{}, s)
}

func TestOpen_Unknown(t *testing.T) {
	_, _, err := store.Open(context.Background(), config.Config{Store: "etcd"})
	assert.Error(t, err)
}
