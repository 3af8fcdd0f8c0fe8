package classify

import (
	"testing"

	"github.com/mailsift/mailsift/internal/core"
)

func newTopicClassifier() *TopicClassifier {
	return NewTopicClassifier(DefaultTopics())
}

func TestTopicTechnology(t *testing.T) {
	got := newTopicClassifier().Classify("New machine learning software for every developer")
	if got != core.TopicTechnology {
		t.Errorf("expected technology, got %s", got)
	}
}

func TestTopicHealth(t *testing.T) {
	got := newTopicClassifier().Classify("Wellness and fitness habits for better health")
	if got != core.TopicHealth {
		t.Errorf("expected health, got %s", got)
	}
}

func TestTopicEducation(t *testing.T) {
	got := newTopicClassifier().Classify("University course on academic research methods")
	if got != core.TopicEducation {
		t.Errorf("expected education, got %s", got)
	}
}

func TestTopicGeneralFallback(t *testing.T) {
	got := newTopicClassifier().Classify("Dinner plans for tomorrow evening")
	if got != core.TopicGeneral {
		t.Errorf("expected general for unmatched text, got %s", got)
	}
}

func TestTopicEmptyText(t *testing.T) {
	got := newTopicClassifier().Classify("")
	if got != core.TopicGeneral {
		t.Errorf("expected general for empty text, got %s", got)
	}
}

// "portfolio" is a keyword of both finance and investing; on a tied
// score the earlier category in the configured order wins.
func TestTopicTieBreakByOrder(t *testing.T) {
	got := newTopicClassifier().Classify("Rebalancing your portfolio this quarter")
	if got != core.TopicFinance {
		t.Errorf("expected finance on tie, got %s", got)
	}
}

// A keyword contributes once however often it repeats: three distinct
// health keywords beat one technology keyword repeated three times.
func TestTopicDistinctKeywordCount(t *testing.T) {
	got := newTopicClassifier().Classify("tech tech tech health wellness fitness")
	if got != core.TopicHealth {
		t.Errorf("expected health via distinct keyword count, got %s", got)
	}
}

func TestTopicCaseInsensitive(t *testing.T) {
	got := newTopicClassifier().Classify("MACHINE LEARNING AND SOFTWARE")
	if got != core.TopicTechnology {
		t.Errorf("expected technology for upper-cased text, got %s", got)
	}
}
