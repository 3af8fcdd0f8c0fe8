package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/core"
)

// MySQLStore is a MySQL implementation of the ResultStore interface
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore creates a new MySQL result store
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS processing_result (
			id TINYINT PRIMARY KEY,
			payload MEDIUMTEXT NOT NULL,
			stored_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{db: db, logger: logger}, nil
}

// Save replaces the stored result
func (s *MySQLStore) Save(ctx context.Context, result *core.ProcessingResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO processing_result (id, payload, stored_at)
		VALUES (1, ?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload), stored_at = VALUES(stored_at)
	`, string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to store result: %w", err)
	}

	s.logger.Debug("Saved processing result", zap.Int("bytes", len(payload)))
	return nil
}

// Load reads the stored result
func (s *MySQLStore) Load(ctx context.Context) (*core.ProcessingResult, error) {
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
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
