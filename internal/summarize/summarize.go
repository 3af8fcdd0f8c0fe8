// Package summarize builds short extractive summaries of article text.
// Summaries are made of existing sentences selected by TF-IDF weight and
// re-joined in original order; the multi-tier fallback chain guarantees
// Summarize never fails for any input.
package summarize

import (
	"strings"

	"github.com/mailsift/mailsift/internal/textnorm"
)

const (
	// Inputs shorter than this are returned without sentence scoring.
	shortInputFloor = 100
	// Byte cap applied to short inputs.
	shortInputCap = 200
	// Byte cap applied when sentence splitting yields nothing.
	rawFallbackCap = 300

	ellipsis = "..."

	defaultMaxSentences = 3
)

// TextCleaner strips markup before sentence splitting.
type TextCleaner interface {
	Clean(s string) string
}

// Summarizer produces extractive summaries of up to MaxSentences sentences.
type Summarizer struct {
	cleaner      TextCleaner
	maxSentences int
}

// New creates a summarizer. maxSentences values below 1 fall back to 3.
func New(cleaner TextCleaner, maxSentences int) *Summarizer {
	if maxSentences < 1 {
		maxSentences = defaultMaxSentences
	}
	if cleaner == nil {
		cleaner = textnorm.New()
	}
	return &Summarizer{cleaner: cleaner, maxSentences: maxSentences}
}

// Summarize returns a 1-3 sentence extractive summary of text. Selection
// is by TF-IDF score over the sentence set, but the selected sentences
// are always presented in their original order. Each fallback tier keeps
// the function total: it never returns an error and never panics.
func (s *Summarizer) Summarize(text string) string {
	if out, done := shortInput(text); done {
		return out
	}

	clean := s.cleaner.Clean(text)
	if out, done := shortInput(clean); done {
		return out
	}

	sentences := SplitSentences(clean)
	if len(sentences) == 0 {
		return capText(text, rawFallbackCap)
	}

	if len(sentences) <= s.maxSentences {
		return strings.Join(sentences, " ")
	}

	scores, err := scoreSentences(sentences)
	if err != nil {
		// Degenerate vocabulary; take the leading sentences instead.
		return strings.Join(sentences[:s.maxSentences], " ")
	}

	selected := selectTop(sentences, scores, s.maxSentences)
	return strings.Join(selected, " ")
}

// shortInput handles the below-floor tier: text under the floor is
// returned as-is when within the cap, otherwise capped with an ellipsis.
func shortInput(text string) (string, bool) {
	if text == "" {
		return "", true
	}
	if len(strings.TrimSpace(text)) >= shortInputFloor {
		return "", false
	}
	return capText(text, shortInputCap), true
}

func capText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return textnorm.Truncate(text, max) + ellipsis
}
