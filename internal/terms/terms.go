// Package terms derives domain-significant phrases from document text.
//
// Candidates are stopword-filtered word 1- and 2-grams. With a single
// document there is no inverse-document-frequency signal, so ranking
// reduces to normalized term frequency with deterministic first-occurrence
// tie-breaking.
package terms

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Term is a short phrase with a relevance weight.
type Term struct {
	Text   string
	Weight float64
}

// DefaultTopK caps the returned term set when no limit is given.
const DefaultTopK = 40

var wordRe = regexp.MustCompile(`[\pL\pN]+`)

// Extract returns the topK highest-weighted distinct spans from text,
// ordered by weight descending, ties broken by first occurrence. Empty or
// degenerate input yields an empty set, never an error.
func Extract(text string, topK int) []Term {
	if topK <= 0 {
		topK = DefaultTopK
	}

	tokens := wordRe.FindAllString(strings.ToLower(text), -1)

	// Drop stopwords before forming n-grams, so bigrams span useful words.
	kept := tokens[:0]
	for _, t := range tokens {
		if !stopwords[t] {
			kept = append(kept, t)
		}
	}

	var candidates []string
	for i, t := range kept {
		if validSpan(t) {
			candidates = append(candidates, t)
		}
		if i+1 < len(kept) {
			bigram := t + " " + kept[i+1]
			if validSpan(bigram) {
				candidates = append(candidates, bigram)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	counts := make(map[string]int, len(candidates))
	firstSeen := make(map[string]int, len(candidates))
	for i, c := range candidates {
		if _, ok := firstSeen[c]; !ok {
			firstSeen[c] = i
		}
		counts[c]++
	}

	total := float64(len(candidates))
	ranked := make([]Term, 0, len(counts))
	for span, n := range counts {
		ranked = append(ranked, Term{Text: span, Weight: float64(n) / total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return firstSeen[ranked[i].Text] < firstSeen[ranked[j].Text]
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// validSpan rejects spans of 3 or fewer characters and purely numeric spans.
func validSpan(s string) bool {
	if utf8.RuneCountInString(s) <= 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ' ' {
			return true
		}
	}
	return false
}
