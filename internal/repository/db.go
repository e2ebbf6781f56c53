package repository

import (
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/VishnuKaku/workshipai/internal/common"
)

// Open opens (or creates) the embedded sqlite database.
func Open(path string, logger *slog.Logger) (*sql.DB, error) {
	logger.Info("opening database", "path", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "open database")
	}
	if err := db.Ping(); err != nil {
		return nil, common.WrapError(err, "ping database")
	}
	return db, nil
}

// Close closes the database connection gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}
