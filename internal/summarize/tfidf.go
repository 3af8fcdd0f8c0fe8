package summarize

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vocabulary cap: only the highest-total-frequency terms are scored,
// bounding cost on long newsletters.
const maxVocabulary = 100

var errDegenerateVocabulary = errors.New("no scorable terms in sentence set")

// scoreSentences assigns each sentence the sum of the TF-IDF weights of
// its terms, computed over the sentence collection as the document set.
// Term weights use smoothed IDF and per-sentence L2 normalization. An
// empty vocabulary (all stop-words or no word tokens) is an error so the
// caller can fall back.
func scoreSentences(sentences []string) ([]float64, error) {
	tokenized := make([][]string, len(sentences))
	totalFreq := make(map[string]int)

	for i, sentence := range sentences {
		terms := tokenize(sentence)
		tokenized[i] = terms
		for _, t := range terms {
			totalFreq[t]++
		}
	}

	if len(totalFreq) == 0 {
		return nil, errDegenerateVocabulary
	}

	vocab := capVocabulary(totalFreq)

	// Document frequency: sentences containing each vocabulary term.
	df := make(map[string]int, len(vocab))
	for _, terms := range tokenized {
		seen := make(map[string]struct{})
		for _, t := range terms {
			if _, ok := vocab[t]; !ok {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	n := float64(len(sentences))
	idf := make(map[string]float64, len(vocab))
	for t := range vocab {
		idf[t] = math.Log((1+n)/float64(1+df[t])) + 1
	}

	scores := make([]float64, len(sentences))
	for i, terms := range tokenized {
		tf := make(map[string]int)
		for _, t := range terms {
			if _, ok := vocab[t]; ok {
				tf[t]++
			}
		}

		var sum, sumSq float64
		for t, count := range tf {
			w := float64(count) * idf[t]
			sum += w
			sumSq += w * w
		}
		if sumSq > 0 {
			scores[i] = sum / math.Sqrt(sumSq)
		}
	}

	return scores, nil
}

// capVocabulary keeps the maxVocabulary highest-total-frequency terms,
// breaking frequency ties lexicographically so scoring is deterministic.
func capVocabulary(totalFreq map[string]int) map[string]struct{} {
	if len(totalFreq) <= maxVocabulary {
		vocab := make(map[string]struct{}, len(totalFreq))
		for t := range totalFreq {
			vocab[t] = struct{}{}
		}
		return vocab
	}

	terms := make([]string, 0, len(totalFreq))
	for t := range totalFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalFreq[terms[i]] != totalFreq[terms[j]] {
			return totalFreq[terms[i]] > totalFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	vocab := make(map[string]struct{}, maxVocabulary)
	for _, t := range terms[:maxVocabulary] {
		vocab[t] = struct{}{}
	}
	return vocab
}

// tokenize lowercases a sentence into word terms, dropping stop-words
// and single-character tokens.
func tokenize(sentence string) []string {
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// selectTop picks the count highest-scored sentences and restores their
// original document order: selection is by score, presentation preserves
// narrative order. Score ties keep the earlier sentence.
func selectTop(sentences []string, scores []float64, count int) []string {
	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})

	top := indices[:count]
	sort.Ints(top)

	selected := make([]string, 0, count)
	for _, i := range top {
		selected = append(selected, sentences[i])
	}
	return selected
}
