package document

import (
	"strings"
	"unicode/utf8"
)

// Heading is a structural title extracted from a document, treated as a
// study topic. Position is the order of first appearance.
type Heading struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
}

// Document is the flat result of text extraction: an ordered, deduplicated
// list of heading candidates plus the cleaned full text.
type Document struct {
	Title    string
	Headings []Heading
	Text     string

	seen map[string]bool
}

func New(title string) *Document {
	return &Document{
		Title: title,
		seen:  make(map[string]bool),
	}
}

// AddHeading records a heading candidate. Candidates shorter than 4
// characters after trimming are rejected, and duplicates (exact text match)
// keep their first position. Returns true if the heading was added.
func (d *Document) AddHeading(text string) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= 3 {
		return false
	}
	if d.seen == nil {
		d.seen = make(map[string]bool)
	}
	if d.seen[text] {
		return false
	}
	d.seen[text] = true
	d.Headings = append(d.Headings, Heading{Text: text, Position: len(d.Headings)})
	return true
}

// AppendText adds a cleaned block of text (typically one page or section).
// Empty blocks are dropped.
func (d *Document) AppendText(s string) {
	s = CleanText(s)
	if s == "" {
		return
	}
	if d.Text != "" {
		d.Text += "\n"
	}
	d.Text += s
}

// HeadingTexts returns the heading strings in order of first appearance.
func (d *Document) HeadingTexts() []string {
	out := make([]string, len(d.Headings))
	for i, h := range d.Headings {
		out[i] = h.Text
	}
	return out
}

// Empty reports whether extraction produced neither headings nor text.
func (d *Document) Empty() bool {
	return len(d.Headings) == 0 && d.Text == ""
}
