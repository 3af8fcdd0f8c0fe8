package classify

import (
	"testing"

	"github.com/mailsift/mailsift/internal/core"
)

func newTypeClassifier() *TypeClassifier {
	return NewTypeClassifier(DefaultTypeRules())
}

func TestClassifyJob(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Job Alert: Senior Go Engineer",
		"jobs-noreply@linkedin.com",
		"New positions matching your profile",
	)
	if got != core.TypeJob {
		t.Errorf("expected job, got %s", got)
	}
}

func TestClassifyPromotion(t *testing.T) {
	got := newTypeClassifier().Classify(
		"50% OFF Summer Sale",
		"promo@shop.example.com",
		"Limited time only, grab it before it ends",
	)
	if got != core.TypePromotion {
		t.Errorf("expected promotion, got %s", got)
	}
}

func TestClassifyNotification(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Security alert for your account",
		"no-reply@service.example.com",
		"We noticed a new sign-in to your account",
	)
	if got != core.TypeNotification {
		t.Errorf("expected notification, got %s", got)
	}
}

func TestClassifyArticleByContent(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Weekly Tech Newsletter",
		"hello@writer.example.com",
		"This week in technology",
	)
	if got != core.TypeArticle {
		t.Errorf("expected article, got %s", got)
	}
}

func TestClassifyArticleBySenderDomain(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Ideas worth sharing",
		"research@hbr.org",
		"Management thinking for leaders",
	)
	if got != core.TypeArticle {
		t.Errorf("expected article via sender domain, got %s", got)
	}
}

func TestClassifyDefaultsToPersonal(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Lunch tomorrow?",
		"friend@example.com",
		"See you at noon",
	)
	if got != core.TypePersonal {
		t.Errorf("expected personal for unmatched content, got %s", got)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	got := newTypeClassifier().Classify("", "", "")
	if got != core.TypePersonal {
		t.Errorf("expected personal for empty input, got %s", got)
	}
}

// A message matching several indicator sets resolves to the highest
// precedence type: jobs beat articles, promotions beat notifications.
func TestClassifyPrecedence(t *testing.T) {
	c := newTypeClassifier()

	got := c.Classify(
		"Job alert from our weekly newsletter",
		"digest@substack.com",
		"Apply now for these roles",
	)
	if got != core.TypeJob {
		t.Errorf("expected job to win over article, got %s", got)
	}

	got = c.Classify(
		"Account update: flash sale inside",
		"store@shop.example.com",
		"Your account gets 20% off today",
	)
	if got != core.TypePromotion {
		t.Errorf("expected promotion to win over notification, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	got := newTypeClassifier().Classify(
		"NEWSLETTER: THE BIG PICTURE",
		"EDITOR@EXAMPLE.COM",
		"",
	)
	if got != core.TypeArticle {
		t.Errorf("expected article for upper-cased indicators, got %s", got)
	}
}

// Domain indicators apply to the sender field only; the same string in
// the body must not trigger the domain rule.
func TestClassifyDomainIndicatorIgnoresBody(t *testing.T) {
	got := newTypeClassifier().Classify(
		"Quick question",
		"friend@example.com",
		"I saw this on hbr.org yesterday",
	)
	if got != core.TypePersonal {
		t.Errorf("expected personal when domain appears only in body, got %s", got)
	}
}
