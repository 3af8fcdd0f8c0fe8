package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/core"
)

// FileStore persists the result as a JSON flat file. The write goes to
// a temp file in the same directory followed by a rename, so readers
// never observe a partially written result.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed result store, creating the parent
// directory if needed.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Save atomically replaces the stored result
func (s *FileStore) Save(ctx context.Context, result *core.ProcessingResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".mailsift-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace result file: %w", err)
	}

	s.logger.Debug("Saved processing result",
		zap.String("path", s.path),
		zap.Int("bytes", len(data)))

	return nil
}

// Load reads the stored result
func (s *FileStore) Load(ctx context.Context) (*core.ProcessingResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrNoResult
		}
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var result core.ProcessingResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode result file: %w", err)
	}

	return &result, nil
}
