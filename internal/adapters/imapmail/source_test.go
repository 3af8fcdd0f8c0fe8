package imapmail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emersion/go-imap/v2"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/config"
)

func testConfig() config.IMAPConfig {
	return config.IMAPConfig{
		Host:     "imap.example.com",
		Port:     "993",
		Username: "user@example.com",
		Password: "secret",
		TLS:      true,
	}
}

func TestNewSourceRequiresHost(t *testing.T) {
	cfg := testConfig()
	cfg.Host = ""
	if _, err := NewSource(cfg, zap.NewNop()); err == nil {
		t.Error("expected error for missing host")
	}
}

func TestNewSourceRequiresCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Password = ""
	if _, err := NewSource(cfg, zap.NewNop()); err == nil {
		t.Error("expected error for missing credentials")
	}
}

func TestNewSourceDefaultsMailbox(t *testing.T) {
	s, err := NewSource(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.cfg.Mailbox != "INBOX" {
		t.Errorf("expected INBOX default, got %q", s.cfg.Mailbox)
	}
}

func TestListHonorsCanceledContext(t *testing.T) {
	s, err := NewSource(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.List(ctx, "newer_than:7d", 10); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	s, err := NewSource(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Fetch(ctx, "42"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFetchRejectsInvalidUID(t *testing.T) {
	s, err := NewSource(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Fetch(context.Background(), "not-a-uid"); err == nil {
		t.Error("expected error for malformed uid")
	}
}

func TestSearchCriteriaNewerThan(t *testing.T) {
	criteria := searchCriteria("newer_than:7d")
	if criteria.Since.IsZero() {
		t.Fatal("expected Since to be set")
	}

	want := time.Now().AddDate(0, 0, -7)
	if diff := criteria.Since.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("Since off by %v", diff)
	}
}

func TestSearchCriteriaOpaqueQuery(t *testing.T) {
	criteria := searchCriteria("from:someone subject:hello")
	if !criteria.Since.IsZero() {
		t.Errorf("expected no Since for opaque query, got %v", criteria.Since)
	}
}

func TestFormatSender(t *testing.T) {
	env := &imap.Envelope{From: []imap.Address{
		{Name: "Jane Doe", Mailbox: "jane", Host: "example.com"},
	}}
	if got := formatSender(env); got != "Jane Doe <jane@example.com>" {
		t.Errorf("unexpected sender: %q", got)
	}

	env.From[0].Name = ""
	if got := formatSender(env); got != "jane@example.com" {
		t.Errorf("unexpected bare sender: %q", got)
	}

	if got := formatSender(&imap.Envelope{}); got != "Unknown Sender" {
		t.Errorf("expected fallback sender, got %q", got)
	}
}
