// Package textnorm strips markup from raw message content into clean
// plain text and provides UTF-8-safe truncation for preview caps.
package textnorm

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Normalizer converts HTML (or already-plain) content into plain text.
type Normalizer struct{}

// New creates a new Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Clean strips markup, script and style content, collapses whitespace
// runs to single spaces and drops empty lines. It never fails: on any
// parse failure the original input is returned unchanged.
func (n *Normalizer) Clean(s string) string {
	cleaned, err := n.CleanStrict(s)
	if err != nil {
		return s
	}
	return cleaned
}

// CleanStrict is the fallible variant of Clean, exposed so the degraded
// tier can be exercised directly.
func (n *Normalizer) CleanStrict(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()

	return Collapse(doc.Text()), nil
}

// Collapse reduces all whitespace runs (including newlines) to single
// spaces and trims the ends.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate caps s at max bytes, backing off until the result is valid
// UTF-8 so a multi-byte rune is never split.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}
