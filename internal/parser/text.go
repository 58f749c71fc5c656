package parser

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/amprasad/studyplanner/internal/document"
)

// TextParser handles plain text files. With no font information available,
// heading candidates are detected lexically: short standalone lines in all
// caps or with numbered-section prefixes.
type TextParser struct{}

var numberedHeadingRe = regexp.MustCompile(`^\d+(\.\d+)*[.)]?\s+\S`)

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := document.New(titleFromFilename(filename))

	var body strings.Builder
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if looksLikeHeading(line) {
			doc.AddHeading(line)
		}
		if body.Len() > 0 {
			body.WriteString("\n")
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc.AppendText(body.String())
	return doc, nil
}

// looksLikeHeading applies the plain-text heading heuristic: a reasonably
// short line that is either all caps or a numbered section title, without
// sentence punctuation at the end.
func looksLikeHeading(line string) bool {
	if len(line) <= 3 || len(line) > 80 {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, ",") || strings.HasSuffix(line, ";") {
		return false
	}
	if numberedHeadingRe.MatchString(line) {
		return true
	}
	return isAllCaps(line)
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
