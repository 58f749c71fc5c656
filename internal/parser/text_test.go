package parser

import (
	"strings"
	"testing"
)

func TestTextParser_HeadingHeuristics(t *testing.T) {
	input := strings.Join([]string{
		"COURSE OVERVIEW",
		"This course covers the basics.",
		"",
		"1. Introduction to Algorithms",
		"Sorting and searching fundamentals.",
		"",
		"2.1 Complexity Analysis",
		"Big-O notation and friends.",
	}, "\n")

	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"COURSE OVERVIEW",
		"1. Introduction to Algorithms",
		"2.1 Complexity Analysis",
	}
	if len(doc.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(doc.Headings), doc.Headings)
	}
	for i, w := range want {
		if doc.Headings[i].Text != w {
			t.Errorf("heading[%d]: expected %q, got %q", i, w, doc.Headings[i].Text)
		}
	}
	if !strings.Contains(doc.Text, "Sorting and searching fundamentals.") {
		t.Errorf("body text missing from extracted text: %q", doc.Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", doc.Title)
	}
	if !doc.Empty() {
		t.Errorf("expected empty document, got headings=%v text=%q", doc.Headings, doc.Text)
	}
}

func TestTextParser_SentencesAreNotHeadings(t *testing.T) {
	input := "THIS LINE ENDS WITH A PERIOD.\nA normal sentence in mixed case here"
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "plain.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Headings) != 0 {
		t.Errorf("expected no headings, got %+v", doc.Headings)
	}
}

func TestLooksLikeHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"LINEAR ALGEBRA", true},
		{"3) Probability Theory", true},
		{"10.2 Hidden Markov Models", true},
		{"abc", false},
		{"A sentence that ends in a period.", false},
		{strings.Repeat("X", 81), false},
		{"Mixed Case Line", false},
	}
	for _, tt := range tests {
		if got := looksLikeHeading(tt.line); got != tt.want {
			t.Errorf("looksLikeHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
