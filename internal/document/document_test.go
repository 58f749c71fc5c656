package document

import "testing"

func TestAddHeadingDedupAndOrder(t *testing.T) {
	d := New("syllabus")

	if !d.AddHeading("Introduction") {
		t.Fatal("expected first heading to be added")
	}
	if !d.AddHeading("Data Structures") {
		t.Fatal("expected second heading to be added")
	}
	if d.AddHeading("Introduction") {
		t.Error("expected duplicate heading to be rejected")
	}

	if len(d.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(d.Headings))
	}
	if d.Headings[0].Text != "Introduction" || d.Headings[0].Position != 0 {
		t.Errorf("unexpected first heading: %+v", d.Headings[0])
	}
	if d.Headings[1].Text != "Data Structures" || d.Headings[1].Position != 1 {
		t.Errorf("unexpected second heading: %+v", d.Headings[1])
	}
}

func TestAddHeadingRejectsShort(t *testing.T) {
	d := New("x")
	for _, h := range []string{"", "   ", "abc", " ab ", "και"} {
		if d.AddHeading(h) {
			t.Errorf("expected %q to be rejected", h)
		}
	}
	if len(d.Headings) != 0 {
		t.Fatalf("expected no headings, got %d", len(d.Headings))
	}
	// Length counts characters, not bytes.
	if !d.AddHeading("μεση") {
		t.Error("expected 4-character non-ASCII heading to be accepted")
	}
}

func TestAddHeadingTrims(t *testing.T) {
	d := New("x")
	d.AddHeading("  Graph Theory  ")
	if len(d.Headings) != 1 || d.Headings[0].Text != "Graph Theory" {
		t.Fatalf("expected trimmed heading, got %+v", d.Headings)
	}
	if d.AddHeading("Graph Theory") {
		t.Error("expected trimmed duplicate to be rejected")
	}
}

func TestAppendTextSkipsEmpty(t *testing.T) {
	d := New("x")
	d.AppendText("  \n \n ")
	if d.Text != "" {
		t.Errorf("expected empty text, got %q", d.Text)
	}
	d.AppendText("page one")
	d.AppendText("page two")
	if d.Text != "page one\npage two" {
		t.Errorf("unexpected text: %q", d.Text)
	}
}

func TestEmpty(t *testing.T) {
	d := New("x")
	if !d.Empty() {
		t.Error("new document should be empty")
	}
	d.AppendText("something")
	if d.Empty() {
		t.Error("document with text should not be empty")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"blank lines collapsed", "one\n\n\ntwo", "one\ntwo"},
		{"line edges trimmed", "  one  \n\t two ", "one\ntwo"},
		{"standalone page number removed", "intro\n12\noutro", "intro\noutro"},
		{"page label removed", "before Page 3 after", "before after"},
		{"bullets standardized", "• first\n● second", "- first\n- second"},
		{"whitespace only", "   \n  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
