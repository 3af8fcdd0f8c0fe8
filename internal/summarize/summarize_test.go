package summarize

import (
	"strings"
	"testing"
)

// Six sentences with enough distinct vocabulary to score, well past the
// short-input floor.
const articleText = "The container platform migration finished ahead of schedule last quarter. " +
	"Engineers rewrote the deployment pipeline around declarative manifests and automated rollbacks. " +
	"Observability improved dramatically once structured logs replaced plain text output. " +
	"The billing team reported zero regressions during the cutover window. " +
	"Customer latency dropped by thirty percent across every region. " +
	"Future work focuses on capacity planning and cost attribution dashboards."

func TestSummarizeEmptyInput(t *testing.T) {
	if got := New(nil, 3).Summarize(""); got != "" {
		t.Errorf("expected empty summary for empty input, got %q", got)
	}
}

func TestSummarizeShortInputUnchanged(t *testing.T) {
	in := "Short note about nothing much."
	if got := New(nil, 3).Summarize(in); got != in {
		t.Errorf("expected short input back unchanged, got %q", got)
	}
}

func TestSummarizeShortInputIdempotent(t *testing.T) {
	s := New(nil, 3)
	in := "A brief line that sits under the scoring floor."
	once := s.Summarize(in)
	if twice := s.Summarize(once); twice != once {
		t.Errorf("expected idempotence on short input: %q vs %q", once, twice)
	}
}

func TestSummarizeFewSentencesJoined(t *testing.T) {
	in := "The first sentence talks about infrastructure and nothing else at all. " +
		"The second sentence covers the remaining operational details of the rollout."
	got := New(nil, 3).Summarize(in)
	if got != in {
		t.Errorf("expected both sentences joined unchanged, got %q", got)
	}
}

func TestSummarizeSelectsAtMostMax(t *testing.T) {
	got := New(nil, 3).Summarize(articleText)

	selected := SplitSentences(got)
	if len(selected) != 3 {
		t.Fatalf("expected exactly 3 sentences, got %d: %q", len(selected), got)
	}
}

func TestSummarizePreservesOriginalOrder(t *testing.T) {
	got := New(nil, 3).Summarize(articleText)

	original := SplitSentences(articleText)
	prev := -1
	for _, sentence := range SplitSentences(got) {
		idx := -1
		for i, orig := range original {
			if orig == sentence {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("summary sentence %q not found in input", sentence)
		}
		if idx < prev {
			t.Fatalf("summary sentences out of original order: %q", got)
		}
		prev = idx
	}
}

// Sentences built entirely of stop-words leave the scorer with an empty
// vocabulary; the summary falls back to the leading sentences.
func TestSummarizeAllStopWordsFallsBackToLeadingSentences(t *testing.T) {
	in := "They were there because of that. " +
		"Which was where we would be. " +
		"After all this had been about them. " +
		"Before now there was only this. " +
		"Again and again it was over."
	got := New(nil, 3).Summarize(in)

	want := "They were there because of that. " +
		"Which was where we would be. " +
		"After all this had been about them."
	if got != want {
		t.Errorf("expected first 3 sentences, got %q", got)
	}
}

func TestSummarizeStripsMarkup(t *testing.T) {
	html := "<html><body><p>" + articleText + "</p><script>var x = 1;</script></body></html>"
	got := New(nil, 3).Summarize(html)

	if strings.Contains(got, "<p>") || strings.Contains(got, "var x") {
		t.Errorf("expected markup and script stripped, got %q", got)
	}
}

func TestSummarizeLongUnsplittableInput(t *testing.T) {
	in := strings.Repeat("lowercase tokens without any terminal punctuation marks here ", 10)
	got := New(nil, 3).Summarize(in)

	// One giant sentence is below maxSentences; it comes back whole.
	if !strings.HasPrefix(got, "lowercase tokens") {
		t.Errorf("unexpected summary for unsplittable input: %q", got)
	}
}

func TestSummarizeMaxSentencesFloor(t *testing.T) {
	got := New(nil, 0).Summarize(articleText)
	if len(SplitSentences(got)) != 3 {
		t.Errorf("expected non-positive max to fall back to 3, got %q", got)
	}
}

func TestSplitSentencesAbbreviations(t *testing.T) {
	in := "Dr. Smith joined Acme Inc. last March. The announcement surprised nobody."
	got := SplitSentences(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "Dr. Smith joined Acme Inc. last March." {
		t.Errorf("abbreviation split wrong: %q", got[0])
	}
}

func TestSplitSentencesQuestionAndExclamation(t *testing.T) {
	got := SplitSentences("Did it work? It did! Everyone celebrated.")
	if len(got) != 3 {
		t.Errorf("expected 3 sentences, got %d: %v", len(got), got)
	}
}

func TestSplitSentencesInitialisms(t *testing.T) {
	got := SplitSentences("The U.S. market opened flat. Traders waited for news.")
	if len(got) != 2 {
		t.Errorf("expected initialism to not split, got %d: %v", len(got), got)
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences("   "); got != nil {
		t.Errorf("expected nil for blank text, got %v", got)
	}
}
