// Package classify implements the rule-based functional-type and
// keyword-scored topic classifiers. Both take their rule sets as
// immutable configuration at construction time so tests can run with
// reduced keyword sets.
package classify

import (
	"strings"

	"github.com/mailsift/mailsift/internal/core"
)

// TypeRules holds the indicator sets for functional-type classification.
// Evaluation order is fixed: jobs, then promotions, then notifications,
// then articles by content indicator, then articles by sender domain.
// The order is a deliberate precedence policy: a message containing both
// a job indicator and an article indicator is always a job.
type TypeRules struct {
	Jobs           []string
	Promotions     []string
	Notifications  []string
	Articles       []string
	ArticleDomains []string
}

// DefaultTypeRules returns the production indicator sets.
func DefaultTypeRules() TypeRules {
	return TypeRules{
		Jobs: []string{
			"job alert", "job opportunity", "career", "hiring", "position available",
			"linkedin job", "indeed", "glassdoor", "naukri", "monster.com",
			"recruitment", "vacancy", "apply now", "job match",
		},
		Promotions: []string{
			"sale", "discount", "offer", "deal", "coupon", "promo", "limited time",
			"buy now", "shop now", "free shipping", "save money", "special offer",
		},
		Notifications: []string{
			"notification", "alert", "reminder", "security", "password",
			"account", "verification", "confirm", "activate", "update required",
		},
		Articles: []string{
			"newsletter", "digest", "weekly", "daily update", "blog",
			"article", "read more", "latest news", "insights", "analysis",
			"medium.com", "substack", "the-ken.com", "economic times",
			"techcrunch", "hacker news", "ycombinator",
		},
		ArticleDomains: []string{
			"medium.com", "substack.com", "the-ken.com", "techcrunch.com",
			"hbr.org", "mit.edu", "stanford.edu", "newsletter", "digest",
		},
	}
}

// TypeClassifier assigns exactly one functional type per message.
type TypeClassifier struct {
	rules TypeRules
}

// NewTypeClassifier creates a classifier over the given indicator sets.
func NewTypeClassifier(rules TypeRules) *TypeClassifier {
	return &TypeClassifier{rules: rules}
}

// Classify scans the lower-cased subject, sender and body for the
// indicator sets in precedence order. The first set with any substring
// match wins; sender-domain indicators are matched against the sender
// only. No match defaults to personal.
func (c *TypeClassifier) Classify(subject, sender, body string) core.FunctionalType {
	sender = strings.ToLower(sender)
	searchText := strings.ToLower(subject) + " " + sender + " " + strings.ToLower(body)

	switch {
	case containsAny(searchText, c.rules.Jobs):
		return core.TypeJob
	case containsAny(searchText, c.rules.Promotions):
		return core.TypePromotion
	case containsAny(searchText, c.rules.Notifications):
		return core.TypeNotification
	case containsAny(searchText, c.rules.Articles):
		return core.TypeArticle
	case containsAny(sender, c.rules.ArticleDomains):
		return core.TypeArticle
	}

	return core.TypePersonal
}

func containsAny(text string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}
