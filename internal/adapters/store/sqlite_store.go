package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/core"
)

// SQLiteStore is a SQLite implementation of the ResultStore interface.
// The single-row table keeps exactly the latest run.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore creates a new SQLite result store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS processing_result (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			stored_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save replaces the stored result
func (s *SQLiteStore) Save(ctx context.Context, result *core.ProcessingResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO processing_result (id, payload, stored_at)
		VALUES (1, ?, ?)
	`, string(payload), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	s.logger.Debug("Saved processing result", zap.Int("bytes", len(payload)))
	return nil
}

// Load reads the stored result
func (s *SQLiteStore) Load(ctx context.Context) (*core.ProcessingResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM processing_result WHERE id = 1
	`).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrNoResult
		}
		return nil, fmt.Errorf("failed to query result: %w", err)
	}

	var result core.ProcessingResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored result: %w", err)
	}

	return &result, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
