package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Storage records completed requests in a local SQLite database.
type Storage struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies pending
// migrations. Use ":memory:" for an ephemeral store.
func Open(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

type CreateEntryParams struct {
	RequestID    string
	Method       string
	URL          string
	Outcome      string
	DurationMs   int64
	Checksum     *string
	ErrorMessage *string
}

func (s *Storage) CreateEntry(ctx context.Context, params CreateEntryParams) error {
	const query = `
		INSERT INTO request_history (request_id, method, url, outcome, duration_ms, checksum, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query,
		params.RequestID,
		params.Method,
		params.URL,
		params.Outcome,
		params.DurationMs,
		params.Checksum,
		params.ErrorMessage,
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// ListEntries returns the most recent entries, newest first.
func (s *Storage) ListEntries(ctx context.Context, limit int) ([]Entry, error) {
	const query = `
		SELECT id, request_id, method, url, outcome, duration_ms, checksum, error_message, created_at
		FROM request_history
		ORDER BY id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.RequestID,
			&e.Method,
			&e.URL,
			&e.Outcome,
			&e.DurationMs,
			&e.Checksum,
			&e.ErrorMessage,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}

// Clear removes every recorded entry.
func (s *Storage) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM request_history`)
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
