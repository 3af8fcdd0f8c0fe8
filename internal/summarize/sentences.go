package summarize

import (
	"strings"
	"unicode"
)

// Abbreviations that end in a period mid-sentence. Tokens with internal
// periods (e.g., i.e., U.S.) are handled separately.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "rev": {},
	"sr": {}, "jr": {}, "st": {}, "no": {}, "vs": {}, "etc": {},
	"inc": {}, "ltd": {}, "co": {}, "corp": {}, "dept": {}, "univ": {},
	"fig": {}, "al": {}, "approx": {}, "est": {}, "min": {}, "max": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

const closingPunct = `"')]` + "”’"
const openingPunct = `"'([` + "“‘"

// SplitSentences splits cleaned text into sentences using punctuation
// and casing heuristics: a period ends a sentence only when the word it
// terminates is not an abbreviation or initial and the following token
// starts a new sentence (uppercase or digit). Exclamation and question
// marks always end a sentence. Returns nil for text with no content.
func SplitSentences(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var sentences []string
	var current strings.Builder

	for i, word := range words {
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)

		if !endsSentence(word) {
			continue
		}
		if i+1 < len(words) && terminator(word) == '.' && !startsSentence(words[i+1]) {
			continue
		}

		sentences = append(sentences, current.String())
		current.Reset()
	}

	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}

	return sentences
}

// terminator returns the sentence-ending punctuation of a token, or 0.
func terminator(word string) byte {
	trimmed := strings.TrimRight(word, closingPunct)
	if trimmed == "" {
		return 0
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?':
		return trimmed[len(trimmed)-1]
	}
	return 0
}

func endsSentence(word string) bool {
	switch terminator(word) {
	case '!', '?':
		return true
	case '.':
		core := strings.TrimSuffix(strings.TrimRight(word, closingPunct), ".")
		return !isAbbreviation(core)
	}
	return false
}

func isAbbreviation(word string) bool {
	word = strings.TrimLeft(word, openingPunct)
	if word == "" {
		return false
	}
	// Internal periods mark initialisms: e.g, i.e, U.S
	if strings.Contains(word, ".") {
		return true
	}
	if _, ok := abbreviations[strings.ToLower(word)]; ok {
		return true
	}
	// A lone capital is an initial, as in "J. Smith".
	runes := []rune(word)
	return len(runes) == 1 && unicode.IsUpper(runes[0])
}

// startsSentence reports whether a token can open a new sentence after a
// period: it must begin with an uppercase letter or a digit, optionally
// behind opening punctuation.
func startsSentence(word string) bool {
	word = strings.TrimLeft(word, openingPunct)
	if word == "" {
		return false
	}
	r := []rune(word)[0]
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}
