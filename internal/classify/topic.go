package classify

import (
	"strings"

	"github.com/mailsift/mailsift/internal/core"
)

// TopicKeywords pairs a topic label with its keyword list. The position
// of an entry in the configured slice is its tie-break rank: when two
// topics tie on the highest nonzero score, the earlier entry wins. This
// ordering is part of the contract, not an artifact of map iteration.
type TopicKeywords struct {
	Label    core.TopicLabel
	Keywords []string
}

// DefaultTopics returns the seven production topic categories in their
// canonical tie-break order.
func DefaultTopics() []TopicKeywords {
	return []TopicKeywords{
		{core.TopicTechnology, []string{
			"ai", "artificial intelligence", "machine learning", "tech", "software",
			"programming", "coding", "developer", "startup", "innovation", "digital",
			"blockchain", "cryptocurrency", "cloud", "cybersecurity", "data science",
		}},
		{core.TopicFinance, []string{
			"finance", "money", "investment", "trading", "stock", "market", "economy",
			"banking", "cryptocurrency", "bitcoin", "portfolio", "wealth", "financial",
		}},
		{core.TopicInvesting, []string{
			"investing", "investment", "portfolio", "stocks", "bonds", "etf", "mutual fund",
			"dividend", "returns", "asset", "equity", "venture capital", "ipo",
		}},
		{core.TopicGeopolitics, []string{
			"politics", "government", "election", "policy", "international", "global",
			"war", "conflict", "diplomacy", "trade war", "sanctions", "geopolitical",
		}},
		{core.TopicBusiness, []string{
			"business", "company", "corporate", "enterprise", "management", "strategy",
			"leadership", "entrepreneurship", "revenue", "profit", "growth",
		}},
		{core.TopicHealth, []string{
			"health", "medical", "wellness", "fitness", "nutrition", "healthcare",
			"medicine", "disease", "treatment", "therapy", "mental health",
		}},
		{core.TopicEducation, []string{
			"education", "learning", "course", "university", "school", "training",
			"skill", "knowledge", "academic", "research", "study",
		}},
	}
}

// TopicClassifier assigns exactly one topic label to cleaned article text.
type TopicClassifier struct {
	topics []TopicKeywords
}

// NewTopicClassifier creates a classifier over an ordered category list.
func NewTopicClassifier(topics []TopicKeywords) *TopicClassifier {
	return &TopicClassifier{topics: topics}
}

// Classify scores each category by the count of distinct keywords found
// as substrings in the lower-cased text; a keyword contributes at most 1
// however often it occurs. The strictly highest score wins, ties resolve
// to the earlier category, and an all-zero score yields general.
func (c *TopicClassifier) Classify(text string) core.TopicLabel {
	lower := strings.ToLower(text)

	best := core.TopicGeneral
	bestScore := 0

	for _, topic := range c.topics {
		score := 0
		for _, keyword := range topic.Keywords {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = topic.Label
		}
	}

	return best
}
