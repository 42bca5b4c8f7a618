package kv_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/kv"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store/storetest"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

func TestKVStore_MapCache(t *testing.T) {
	storetest.Run(t, func(t *testing.T) vacation.Store { return kv.New(kv.NewMapCache()) })
}

func TestKVStore_Redis(t *testing.T) {
	addr := os.Getenv("VACATION_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("VACATION_TEST_REDIS_ADDR not set")
	}
	cache := kv.NewRedisCache(addr)
	t.Cleanup(func() { cache.Close() })
	require.NoError(t, cache.Ping(context.Background()))

	base := kv.New(cache)
	storetest.Run(t, func(t *testing.T) vacation.Store {
		store := base.WithKey("vacation_tracker_test_" + t.Name())
		require.NoError(t, store.Reset(context.Background()))
		t.Cleanup(func() { store.Reset(context.Background()) })
		return store
	})
}

func TestKVStore_DocumentFormat(t *testing.T) {
	// GIVEN: A seeded store
	ctx := context.Background()
	cache := kv.NewMapCache()
	_, err := vacation.Seed(ctx, kv.New(cache), 2026)
	require.NoError(t, err)

	// THEN: The document lives under the well-known key as a JSON array
	raw, ok := cache.Data[kv.DefaultKey]
	require.True(t, ok)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &docs))
	require.Len(t, docs, 3)

	bob := docs[1]
	assert.Equal(t, "emp-002", bob["id"])
	assert.Equal(t, "05-22", bob["birthday"])
	assert.Equal(t, "2023-11-20", bob["startDate"])
	reqs := bob["requests"].([]any)
	require.Len(t, reqs, 1)
	assert.Equal(t, map[string]any{"id": "req-1", "date": "2026-01-20", "days": float64(2)}, reqs[0])
}

func TestKVStore_ReadsExistingDocument(t *testing.T) {
	cache := kv.NewMapCache()
	cache.Data[kv.DefaultKey] = `[{"id":"emp-9","name":"Zed","birthday":"03-04","startDate":"2020-05-06",` +
		`"requests":[{"id":"r1","date":"2024-03-10","days":2}]}]`

	emp, err := kv.New(cache).GetEmployee(context.Background(), "emp-9")
	require.NoError(t, err)
	assert.Equal(t, vacation.MonthDay{Month: time.March, Day: 4}, emp.Birthday)

	stats := vacation.ComputeStats(emp, vacation.NewDate(2024, time.March, 15))
	assert.True(t, stats.BonusUsed)
	assert.Equal(t, 1, stats.RegularUsed)
	assert.Equal(t, 5, stats.TotalBalance)
}

func TestKVStore_CorruptDocument(t *testing.T) {
	ctx := context.Background()
	cache := kv.NewMapCache()
	store := kv.New(cache)

	cache.Data[kv.DefaultKey] = "not json"
	_, err := store.ListEmployees(ctx)
	assert.Error(t, err)

	cache.Data[kv.DefaultKey] = `[{"id":"emp-1","name":"X","birthday":"13-01","startDate":"2020-01-01"}]`
	_, err = store.ListEmployees(ctx)
	assert.ErrorIs(t, err, vacation.ErrInvalidBirthday)
}
