package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingsAndText(t *testing.T) {
	input := `# Operating Systems

Processes and threads.

## Memory Management

Paging and segmentation.

## Memory Management

Repeated heading should not duplicate.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "syllabus.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Operating Systems", "Memory Management"}
	if len(doc.Headings) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(doc.Headings), doc.Headings)
	}
	for i, w := range want {
		if doc.Headings[i].Text != w {
			t.Errorf("heading[%d]: expected %q, got %q", i, w, doc.Headings[i].Text)
		}
	}

	for _, fragment := range []string{"Processes and threads.", "Paging and segmentation."} {
		if !strings.Contains(doc.Text, fragment) {
			t.Errorf("expected text to contain %q, got %q", fragment, doc.Text)
		}
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader("Just a paragraph of prose."), "plain.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Headings) != 0 {
		t.Errorf("expected no headings, got %+v", doc.Headings)
	}
	if doc.Text != "Just a paragraph of prose." {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Empty() {
		t.Errorf("expected empty document, got headings=%v text=%q", doc.Headings, doc.Text)
	}
}
