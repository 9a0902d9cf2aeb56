// Package sqlite implements quotestore.Store on SQLite via the pure
// Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/quotecms/quotetag/pkg/errors"
	"github.com/quotecms/quotetag/pkg/quotes"
	"github.com/quotecms/quotetag/pkg/quotestore"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite quote database with WAL
// mode enabled
func Open(ctx context.Context, path string) (quotestore.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreOpen, "cannot open quote database %s", path)
	}

	// WAL keeps concurrent readers cheap
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, errors.ErrStoreOpen, "cannot enable WAL mode")
	}

	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	manual_tags TEXT NOT NULL DEFAULT '[]',
	auto_tags TEXT NOT NULL DEFAULT '[]',
	removed_auto_tags TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, errors.ErrStoreOpen, "cannot initialize quote schema")
	}
	return nil
}

func encodeTags(s quotes.TagSet) (string, error) {
	if s == nil {
		s = quotes.NewTagSet()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeTags(raw string) (quotes.TagSet, error) {
	if raw == "" {
		return quotes.NewTagSet(), nil
	}
	var s quotes.TagSet
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *sqliteStore) UpsertQuote(ctx context.Context, q *quotes.Quote) error {
	if q.ID == "" {
		q.ID = quotestore.NewID()
	}
	q.EnsureSets()
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	manual, err := encodeTags(q.ManualTags)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode manual tags")
	}
	auto, err := encodeTags(q.AutoTags)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode auto tags")
	}
	removed, err := encodeTags(q.RemovedAutoTags)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode removed tags")
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO quotes (id, text, author, source, manual_tags, auto_tags, removed_auto_tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	text = excluded.text,
	author = excluded.author,
	source = excluded.source,
	manual_tags = excluded.manual_tags,
	auto_tags = excluded.auto_tags,
	removed_auto_tags = excluded.removed_auto_tags,
	updated_at = excluded.updated_at`,
		q.ID, q.Text, q.Author, q.Source, manual, auto, removed,
		q.CreatedAt.Format(time.RFC3339Nano), q.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot upsert quote %s", q.ID)
	}
	return nil
}

func scanQuote(row interface{ Scan(...interface{}) error }) (*quotes.Quote, error) {
	var q quotes.Quote
	var manual, auto, removed, createdAt, updatedAt string

	if err := row.Scan(&q.ID, &q.Text, &q.Author, &q.Source,
		&manual, &auto, &removed, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if q.ManualTags, err = decodeTags(manual); err != nil {
		return nil, err
	}
	if q.AutoTags, err = decodeTags(auto); err != nil {
		return nil, err
	}
	if q.RemovedAutoTags, err = decodeTags(removed); err != nil {
		return nil, err
	}
	if q.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, err
	}
	if q.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

const quoteColumns = "id, text, author, source, manual_tags, auto_tags, removed_auto_tags, created_at, updated_at"

func (s *sqliteStore) GetQuote(ctx context.Context, id string) (*quotes.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes WHERE id = ?", id)

	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, errors.Newf(errors.ErrNotFound, "quote %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreQuery, "cannot read quote %s", id)
	}
	return q, nil
}

func (s *sqliteStore) ListQuotes(ctx context.Context) ([]*quotes.Quote, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+quoteColumns+" FROM quotes ORDER BY created_at, id")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "cannot list quotes")
	}
	defer func() { _ = rows.Close() }()

	var out []*quotes.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrStoreQuery, "cannot decode quote row")
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrStoreQuery, "cannot list quotes")
	}
	return out, nil
}

func (s *sqliteStore) SetAutoTags(ctx context.Context, id string, tags quotes.TagSet) error {
	auto, err := encodeTags(tags)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "cannot encode auto tags")
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE quotes SET auto_tags = ?, updated_at = ? WHERE id = ?",
		auto, time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "cannot update auto tags for quote %s", id)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return errors.Newf(errors.ErrNotFound, "quote %s not found", id)
	}
	return nil
}

func (s *sqliteStore) RemoveAutoTag(ctx context.Context, id, tag string) error {
	q, err := s.GetQuote(ctx, id)
	if err != nil {
		return err
	}
	q.AutoTags.Remove(tag)
	q.RemovedAutoTags.Add(tag)
	return s.UpsertQuote(ctx, q)
}

func (s *sqliteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&n); err != nil {
		return 0, errors.Wrap(err, errors.ErrStoreQuery, "cannot count quotes")
	}
	return n, nil
}
