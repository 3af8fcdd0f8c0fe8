package core

import (
	"context"
	"errors"
)

// ErrMessageNotFound is returned by a MailSource when a listed message
// cannot be fetched anymore.
var ErrMessageNotFound = errors.New("message not found")

// ErrNoResult is returned by a ResultStore when no run has been persisted yet.
var ErrNoResult = errors.New("no processing result stored")

// MailSource defines the interface to the mail-retrieval provider. The
// source owns authentication, network I/O and retries; the core only
// consumes complete messages.
type MailSource interface {
	// List returns message IDs matching the provider query, newest first,
	// capped at maxResults.
	List(ctx context.Context, query string, maxResults int) ([]string, error)

	// Fetch retrieves one complete message by ID.
	Fetch(ctx context.Context, id string) (*RawMessage, error)
}

// ResultStore persists the result of a pipeline run. Save replaces the
// previous result wholesale; there is no merging across runs.
type ResultStore interface {
	Save(ctx context.Context, result *ProcessingResult) error
	Load(ctx context.Context) (*ProcessingResult, error)
}

// TextCleaner strips markup from raw message content into plain text.
type TextCleaner interface {
	Clean(s string) string
}

// TypeClassifier assigns exactly one functional type per message.
type TypeClassifier interface {
	Classify(subject, sender, body string) FunctionalType
}

// TopicClassifier assigns exactly one topic label to cleaned article text.
type TopicClassifier interface {
	Classify(text string) TopicLabel
}

// Summarizer produces a short extractive summary of article text.
type Summarizer interface {
	Summarize(text string) string
}
