package geocode

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/VishnuKaku/workshipai/internal/entity"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.TempDir()+"/cache.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteCachePutGet(t *testing.T) {
	cache, err := NewSQLiteCache(openTestDB(t), time.Hour, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "Zurich Airport", entity.GeocodeResult{Latitude: 47.46, Longitude: 8.55}))

	got, err := cache.Get(ctx, "Zurich Airport")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 47.46, got.Latitude, 1e-9)
	assert.InDelta(t, 8.55, got.Longitude, 1e-9)
}

func TestSQLiteCacheMiss(t *testing.T) {
	cache, err := NewSQLiteCache(openTestDB(t), time.Hour, nil)
	require.NoError(t, err)

	got, err := cache.Get(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteCacheExpiry(t *testing.T) {
	db := openTestDB(t)
	cache, err := NewSQLiteCache(db, time.Hour, nil)
	require.NoError(t, err)

	ctx := context.Background()
	// Backdate the row past the TTL.
	stale := time.Now().Add(-2 * time.Hour).Unix()
	_, err = db.Exec(`INSERT INTO geocode_cache (name, lat, lon, cached_at) VALUES (?, ?, ?, ?)`,
		"Old Airport", 1.0, 2.0, stale)
	require.NoError(t, err)

	got, err := cache.Get(ctx, "Old Airport")
	require.NoError(t, err)
	assert.Nil(t, got, "expired rows read as misses")

	// The expired row was evicted.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM geocode_cache WHERE name = ?`, "Old Airport").Scan(&count))
	assert.Zero(t, count)
}

func TestSQLiteCacheRefresh(t *testing.T) {
	cache, err := NewSQLiteCache(openTestDB(t), time.Hour, nil)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, "X", entity.GeocodeResult{Latitude: 1, Longitude: 2}))
	require.NoError(t, cache.Put(ctx, "X", entity.GeocodeResult{Latitude: 3, Longitude: 4}))

	got, err := cache.Get(ctx, "X")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 3.0, got.Latitude, 1e-9)
}
