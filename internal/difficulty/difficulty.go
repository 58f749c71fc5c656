// Package difficulty estimates a relative difficulty for each heading from
// technical-term density and lexical complexity.
package difficulty

import (
	"math"
	"regexp"
	"strings"

	"github.com/amprasad/studyplanner/internal/document"
	"github.com/amprasad/studyplanner/internal/terms"
)

// MinScore is the floor applied to every heading so that weight ratios in
// the allocator never see a zero-weight topic.
const MinScore = 1.0

const (
	termHitWeight    = 3.0
	wordLengthWeight = 0.8
)

var wordRe = regexp.MustCompile(`\w+`)

// Score computes one difficulty score per heading. Every input heading
// receives exactly one entry; scores are rounded to 3 decimal places and
// floored at MinScore. An empty term set degrades to lexical-only scoring.
func Score(headings []document.Heading, techTerms []terms.Term) map[string]float64 {
	scores := make(map[string]float64, len(headings))
	for _, h := range headings {
		scores[h.Text] = scoreHeading(h.Text, techTerms)
	}
	return scores
}

func scoreHeading(heading string, techTerms []terms.Term) float64 {
	lower := strings.ToLower(heading)

	hits := 0
	for _, t := range techTerms {
		if strings.Contains(lower, t.Text) {
			hits++
		}
	}

	words := wordRe.FindAllString(lower, -1)
	totalLen := 0
	for _, w := range words {
		totalLen += len(w)
	}
	meanWordLength := float64(totalLen) / float64(len(words)+1)

	score := float64(hits)*termHitWeight + meanWordLength*wordLengthWeight
	score = math.Round(score*1000) / 1000
	if score < MinScore {
		score = MinScore
	}
	return score
}
