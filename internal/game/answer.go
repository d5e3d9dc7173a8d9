package game

import (
	"strings"
	"unicode"
)

// Answer grading for the free-text games.
//
// Grading is deliberately lenient: a response counts as correct when the
// normalized forms contain each other, and the board game additionally
// accepts any sufficiently long keyword shared with the reference answer.
// This leniency is documented product behavior, not an accident — do not
// tighten it without a product decision.

// minKeywordLen is the shortest keyword that can match on its own.
const minKeywordLen = 4

// Normalize lowercases s, trims it, and collapses internal whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripPunct removes everything but letters, digits and spaces.
func stripPunct(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchContainment grades a free-recall response: correct when the
// normalized response contains, or is contained in, the normalized
// reference answer. Empty responses never match.
func MatchContainment(response, reference string) bool {
	resp := Normalize(response)
	ref := Normalize(reference)
	if resp == "" || ref == "" {
		return false
	}
	return strings.Contains(resp, ref) || strings.Contains(ref, resp)
}

// MatchKeyword grades a board-clue response: containment as above
// (additionally punctuation-insensitive), or any shared keyword of at
// least minKeywordLen characters.
func MatchKeyword(response, reference string) bool {
	resp := Normalize(stripPunct(response))
	ref := Normalize(stripPunct(reference))
	if resp == "" || ref == "" {
		return false
	}
	if strings.Contains(resp, ref) || strings.Contains(ref, resp) {
		return true
	}

	refWords := make(map[string]bool)
	for _, w := range strings.Fields(ref) {
		if len(w) >= minKeywordLen {
			refWords[w] = true
		}
	}
	for _, w := range strings.Fields(resp) {
		if refWords[w] {
			return true
		}
	}
	return false
}
