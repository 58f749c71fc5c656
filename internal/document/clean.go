package document

import (
	"regexp"
	"strings"
)

var (
	pageNumberRe = regexp.MustCompile(`(?m)(\bPage\s*\d+\b|^\s*\d+\s*$|^\s*-\d+-\s*$|^\s*\d+\s*/\s*\d+\s*$)`)
	bulletRe     = regexp.MustCompile(`[•●▪→*–]`)
	multiSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
)

// CleanText normalizes extracted page text: strips standalone page numbers,
// standardizes bullet characters, collapses runs of spaces, trims line edges
// and drops blank lines.
func CleanText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = pageNumberRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "-")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
