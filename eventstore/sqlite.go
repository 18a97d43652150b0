package eventstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Store backed by a SQLite database, for deployments that
// want the event journal to survive the process.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if necessary creates) the journal database at
// the given path. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("eventstore: open database: %w", err)
	}
	// SQLite writes are serialized; one connection avoids lock contention
	// between the migration and concurrent appends.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("eventstore: migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		stream    TEXT    NOT NULL,
		version   INTEGER NOT NULL,
		id        TEXT    NOT NULL,
		type      TEXT    NOT NULL,
		data      BLOB,
		timestamp DATETIME NOT NULL,
		PRIMARY KEY (stream, version)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append adds events to a stream with an optimistic version check, inside
// a single transaction.
func (s *SQLiteStore) Append(ctx context.Context, stream string, expectedVersion int, events []*Event) (int, error) {
	if len(events) == 0 {
		return s.Version(ctx, stream)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return -1, fmt.Errorf("eventstore: begin append: %w", err)
	}
	defer tx.Rollback()

	current, err := streamVersion(ctx, tx, stream)
	if err != nil {
		return -1, err
	}
	if current != expectedVersion {
		return current, ErrConcurrencyConflict
	}

	// Versions are assigned on the way in; the caller's events are left
	// untouched.
	for i, e := range events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (stream, version, id, type, data, timestamp) VALUES (?, ?, ?, ?, ?, ?)`,
			stream, expectedVersion+1+i, e.ID, e.Type, []byte(e.Data), e.Timestamp,
		)
		if err != nil {
			return -1, fmt.Errorf("eventstore: insert event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("eventstore: commit append: %w", err)
	}
	return expectedVersion + len(events), nil
}

// Read returns events with version >= fromVersion, in version order.
func (s *SQLiteStore) Read(ctx context.Context, stream string, fromVersion int) ([]*Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, version, data, timestamp FROM events
		 WHERE stream = ? AND version >= ? ORDER BY version`,
		stream, fromVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("eventstore: read stream %s: %w", stream, err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{Stream: stream}
		var data []byte
		if err := rows.Scan(&e.ID, &e.Type, &e.Version, &data, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("eventstore: scan event: %w", err)
		}
		e.Data = data
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		return nil, ErrStreamNotFound
	}
	return events, nil
}

// Version returns the latest stream version, -1 for an empty stream.
func (s *SQLiteStore) Version(ctx context.Context, stream string) (int, error) {
	return streamVersion(ctx, s.db, stream)
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func streamVersion(ctx context.Context, q querier, stream string) (int, error) {
	// MAX over an empty stream yields NULL, hence the nullable scan.
	var version sql.NullInt64
	err := q.QueryRowContext(ctx,
		`SELECT MAX(version) FROM events WHERE stream = ?`, stream,
	).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return -1, nil
	}
	if err != nil {
		return -1, fmt.Errorf("eventstore: stream version: %w", err)
	}
	if !version.Valid {
		return -1, nil
	}
	return int(version.Int64), nil
}

var _ Store = (*SQLiteStore)(nil)
