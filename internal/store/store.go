// Package store persists named segmentation datasets in a local SQLite
// database so corpora can be imported once and recomputed by name.
//
// The catalog is a single table keyed by dataset name. Payloads are the
// interchange JSON produced by the dataset codec, so anything read back
// has already passed full structural validation. Record ids are assigned
// on first insert and survive payload updates.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ahrav/go-accord/internal/dataset"
	"github.com/ahrav/go-accord/internal/domain"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNotFound reports that no dataset is stored under the requested name.
var ErrNotFound = errors.New("dataset not found")

// Record describes one stored dataset. Timestamps are SQLite datetime
// strings in UTC.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Store is a named-dataset catalog backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the catalog at path, creating the file and schema as needed,
// and configures WAL journaling. The caller owns the returned store and
// must Close it.
func Open(path string) (*Store, error) {
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS datasets (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			payload    TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Put stores ds under name, validating and encoding it first. A name
// already in use keeps its record id and creation time; only the payload
// and update time change. Returns the record id.
func (s *Store) Put(ctx context.Context, name string, ds domain.Dataset) (string, error) {
	if name == "" {
		return "", fmt.Errorf("store: dataset name must not be empty")
	}

	payload, err := dataset.EncodeBytes(ds)
	if err != nil {
		return "", err
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO datasets (id, name, payload) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		 	payload    = excluded.payload,
		 	updated_at = datetime('now')`,
		uuid.NewString(), name, string(payload),
	); err != nil {
		return "", fmt.Errorf("store: put %q: %w", name, err)
	}

	var id string
	if err := s.db.QueryRowContext(ctx,
		`SELECT id FROM datasets WHERE name = ?`, name,
	).Scan(&id); err != nil {
		return "", fmt.Errorf("store: put %q: %w", name, err)
	}
	return id, nil
}

// Get loads and decodes the dataset stored under name.
func (s *Store) Get(ctx context.Context, name string) (domain.Dataset, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM datasets WHERE name = ?`, name,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: dataset %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", name, err)
	}
	return dataset.DecodeBytes([]byte(payload))
}

// List returns every record in the catalog ordered by name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM datasets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete removes the dataset stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("store: dataset %q: %w", name, ErrNotFound)
	}
	return nil
}
