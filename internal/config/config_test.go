package config

import "testing"

func TestEmptyViperCarriesDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	if got := cfg.GetString("source.type"); got != "gmail" {
		t.Errorf("expected default source type gmail, got %q", got)
	}
	if got := cfg.GetPipeline(); got.Query != "newer_than:7d" || got.MaxResults != 30 {
		t.Errorf("unexpected pipeline defaults: %+v", got)
	}
	if got := cfg.GetSummary().MaxSentences; got != 3 {
		t.Errorf("expected default max sentences 3, got %d", got)
	}
	if got := cfg.GetStore().Type; got != "file" {
		t.Errorf("expected default store type file, got %q", got)
	}
	if got := cfg.GetIMAP(); got.Port != "993" || !got.TLS || got.Mailbox != "INBOX" {
		t.Errorf("unexpected imap defaults: %+v", got)
	}
	if got := cfg.GetServer().ListenAddress; got != "0.0.0.0:5002" {
		t.Errorf("unexpected listen address: %q", got)
	}
}

func TestNewFromViperHonorsOverrides(t *testing.T) {
	v := NewEmptyViper()
	v.Set("summary.max_sentences", 5)
	v.Set("pipeline.query", "newer_than:1d")
	cfg := NewFromViper(v)

	if got := cfg.GetSummary().MaxSentences; got != 5 {
		t.Errorf("expected override 5, got %d", got)
	}
	if got := cfg.GetPipeline().Query; got != "newer_than:1d" {
		t.Errorf("expected override query, got %q", got)
	}
	// Untouched keys keep their defaults.
	if got := cfg.GetPipeline().MaxResults; got != 30 {
		t.Errorf("expected default max results 30, got %d", got)
	}
}

func TestGetViperExposesUnderlyingInstance(t *testing.T) {
	v := NewEmptyViper()
	cfg := NewFromViper(v)

	if cfg.GetViper() != v {
		t.Error("expected the wrapped viper instance back")
	}
}
