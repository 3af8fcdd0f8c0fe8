package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/core"
)

func sampleResult() *core.ProcessingResult {
	result := core.NewProcessingResult()
	result.Sections.Articles = append(result.Sections.Articles, core.ClassifiedArticle{
		ID:       "1",
		Title:    "Weekly digest",
		Category: core.TopicTechnology,
		Summary:  "A summary.",
	})
	result.ArticleCategories[core.TopicTechnology] = result.Sections.Articles
	result.Sections.Jobs = append(result.Sections.Jobs, core.ClassifiedRecord{
		ID:   "2",
		Type: core.TypeJob,
	})
	result.Finalize()
	return result
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	s, err := NewFileStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := s.Save(ctx, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Stats.TotalEmails != 2 {
		t.Errorf("expected 2 total emails, got %d", loaded.Stats.TotalEmails)
	}
	if len(loaded.Sections.Articles) != 1 || loaded.Sections.Articles[0].Title != "Weekly digest" {
		t.Errorf("article not round-tripped: %v", loaded.Sections.Articles)
	}
	if len(loaded.ArticleCategories[core.TopicTechnology]) != 1 {
		t.Errorf("category bucket not round-tripped: %v", loaded.ArticleCategories)
	}
}

func TestFileStoreLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	s, err := NewFileStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, err := s.Load(context.Background()); !errors.Is(err, core.ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}
}

func TestFileStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	s, err := NewFileStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	ctx := context.Background()
	if err := s.Save(ctx, sampleResult()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := s.Save(ctx, core.NewProcessingResult()); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Sections.Total() != 0 {
		t.Errorf("expected second save to replace first, got %d entries", loaded.Sections.Total())
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, core.ErrNoResult) {
		t.Errorf("expected ErrNoResult on empty store, got %v", err)
	}

	if err := s.Save(ctx, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Stats.TotalEmails != 2 {
		t.Errorf("expected 2 total emails, got %d", loaded.Stats.TotalEmails)
	}
}
