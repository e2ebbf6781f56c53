package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/VishnuKaku/workshipai/constants"
	"github.com/VishnuKaku/workshipai/internal/common"
	"github.com/VishnuKaku/workshipai/internal/entity"
)

// EntryRepository persists reviewed passport entries. The extraction core
// only produces entries; ownership passes here on save.
type EntryRepository interface {
	Save(ctx context.Context, e *entity.PassportEntry) error
	List(ctx context.Context) ([]*entity.PassportEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PassportEntry, error)
	MarkManual(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type entryRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

const entriesSchema = `
CREATE TABLE IF NOT EXISTS passport_entries (
	id           TEXT PRIMARY KEY,
	sequence     INTEGER NOT NULL,
	country      TEXT NOT NULL,
	airport      TEXT NOT NULL,
	direction    TEXT NOT NULL,
	date         TEXT DEFAULT '',
	description  TEXT DEFAULT '',
	confidence   REAL NOT NULL,
	stamp_image  TEXT DEFAULT '',
	manual_entry INTEGER NOT NULL DEFAULT 0,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_passport_entries_country ON passport_entries(country);
CREATE INDEX IF NOT EXISTS idx_passport_entries_date ON passport_entries(date);`

// NewEntryRepository creates the repository and its schema.
func NewEntryRepository(db *sql.DB, logger *slog.Logger) (EntryRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := db.Exec(entriesSchema); err != nil {
		return nil, common.WrapError(err, "create passport_entries table")
	}
	return &entryRepository{db: db, logger: logger}, nil
}

func (r *entryRepository) Save(ctx context.Context, e *entity.PassportEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO passport_entries
		 (id, sequence, country, airport, direction, date, description, confidence, stamp_image, manual_entry, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 sequence = excluded.sequence, country = excluded.country, airport = excluded.airport,
		 direction = excluded.direction, date = excluded.date, description = excluded.description,
		 confidence = excluded.confidence, stamp_image = excluded.stamp_image,
		 manual_entry = excluded.manual_entry, updated_at = excluded.updated_at`,
		e.ID.String(), e.Sequence, e.Country, e.Airport, string(e.Direction), e.Date,
		e.Description, e.Confidence, e.StampImage, boolToInt(e.ManualEntry),
		e.CreatedAt.Unix(), e.UpdatedAt.Unix())
	if err != nil {
		r.logger.Error("failed to save entry", "id", e.ID, "error", err)
		return common.WrapError(err, "save passport entry")
	}
	return nil
}

func (r *entryRepository) List(ctx context.Context) ([]*entity.PassportEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, country, airport, direction, date, description, confidence, stamp_image, manual_entry, created_at, updated_at
		 FROM passport_entries ORDER BY created_at, sequence`)
	if err != nil {
		r.logger.Error("failed to list entries", "error", err)
		return nil, common.WrapError(err, "list passport entries")
	}
	defer rows.Close()

	var entries []*entity.PassportEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PassportEntry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, sequence, country, airport, direction, date, description, confidence, stamp_image, manual_entry, created_at, updated_at
		 FROM passport_entries WHERE id = ?`, id.String())
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	return e, err
}

func (r *entryRepository) MarkManual(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE passport_entries SET manual_entry = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC().Unix(), id.String())
	if err != nil {
		return common.WrapError(err, "mark entry manual")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM passport_entries WHERE id = ?`, id.String())
	if err != nil {
		return common.WrapError(err, "delete entry")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*entity.PassportEntry, error) {
	var (
		e         entity.PassportEntry
		id        string
		direction string
		manual    int
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&id, &e.Sequence, &e.Country, &e.Airport, &direction, &e.Date,
		&e.Description, &e.Confidence, &e.StampImage, &manual, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, common.WrapError(err, "parse entry id")
	}
	e.ID = parsed
	e.Direction = constants.Direction(direction)
	e.ManualEntry = manual != 0
	e.CreatedAt = time.Unix(createdAt, 0).UTC()
	e.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
