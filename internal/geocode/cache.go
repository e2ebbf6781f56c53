package geocode

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/entity"
)

// DurableCache is the optional second cache tier. Implementations expire
// entries after a fixed validity window; the in-process tier has none.
type DurableCache interface {
	Get(ctx context.Context, name string) (*entity.GeocodeResult, error)
	Put(ctx context.Context, name string, res entity.GeocodeResult) error
}

// SQLiteCache is a sqlite-backed DurableCache with TTL rows.
type SQLiteCache struct {
	db     *sql.DB
	ttl    time.Duration
	logger *slog.Logger
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS geocode_cache (
	name      TEXT PRIMARY KEY,
	lat       REAL NOT NULL,
	lon       REAL NOT NULL,
	cached_at INTEGER NOT NULL
);`

func NewSQLiteCache(db *sql.DB, ttl time.Duration, logger *slog.Logger) (*SQLiteCache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		return nil, common.WrapError(err, "create geocode_cache table")
	}
	return &SQLiteCache{db: db, ttl: ttl, logger: logger}, nil
}

// Get returns the cached result for a name, or nil when absent or expired.
// Expired rows are deleted on read.
func (c *SQLiteCache) Get(ctx context.Context, name string) (*entity.GeocodeResult, error) {
	var lat, lon float64
	var cachedAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT lat, lon, cached_at FROM geocode_cache WHERE name = ?`, name).
		Scan(&lat, &lon, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, common.WrapError(err, "query geocode cache")
	}
	if time.Since(time.Unix(cachedAt, 0)) > c.ttl {
		if _, err := c.db.ExecContext(ctx, `DELETE FROM geocode_cache WHERE name = ?`, name); err != nil {
			c.logger.Warn("failed to evict expired geocode entry", "name", name, "error", err)
		}
		return nil, nil
	}
	return &entity.GeocodeResult{Latitude: lat, Longitude: lon}, nil
}

// Put stores or refreshes a cached result.
func (c *SQLiteCache) Put(ctx context.Context, name string, res entity.GeocodeResult) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO geocode_cache (name, lat, lon, cached_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET lat = excluded.lat, lon = excluded.lon, cached_at = excluded.cached_at`,
		name, res.Latitude, res.Longitude, time.Now().Unix())
	return common.WrapError(err, "write geocode cache")
}
