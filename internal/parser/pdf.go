package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/amprasad/studyplanner/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// DefaultHeadingFontSize is the baseline above which a text run qualifies
// as a heading candidate.
const DefaultHeadingFontSize = 12.0

// PDFParser handles PDF files. It tries the Go library first, then falls
// back to pdftotext if available. Heading candidates are detected from
// font size and boldness; the fallback path yields text only.
type PDFParser struct {
	FallbackPdftotext bool

	// MinHeadingSize overrides DefaultHeadingFontSize when > 0.
	MinHeadingSize float64
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "studyplanner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	doc := document.New(titleFromFilename(filename))

	primaryErr := p.extractWithLibrary(tmpPath, doc)
	if primaryErr == nil {
		return doc, nil
	}

	if p.FallbackPdftotext {
		text, fallbackErr := extractPdftotext(tmpPath)
		if fallbackErr == nil {
			// No font information on this path, so no heading candidates.
			for _, page := range strings.Split(text, "\f") {
				doc.AppendText(page)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("%w: %v (fallback: %v)", ErrExtractionFailed, primaryErr, fallbackErr)
	}
	return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, primaryErr)
}

func (p *PDFParser) extractWithLibrary(path string, doc *document.Document) error {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	minSize := p.MinHeadingSize
	if minSize <= 0 {
		minSize = DefaultHeadingFontSize
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		collectPageHeadings(page, minSize, doc)

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		doc.AppendText(text)
	}
	return nil
}

// collectPageHeadings groups the page's positioned text into line runs and
// records runs rendered above the baseline size or in a bold face.
func collectPageHeadings(page pdflib.Page, minSize float64, doc *document.Document) {
	content := page.Content()

	var run strings.Builder
	var runSize float64
	var runFont string
	var runY float64

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runSize > minSize || isBoldFont(runFont) {
			doc.AddHeading(run.String())
		}
		run.Reset()
	}

	for _, t := range content.Text {
		sameLine := math.Abs(t.Y-runY) < 0.5
		sameStyle := t.Font == runFont && math.Abs(t.FontSize-runSize) < 0.1
		if run.Len() > 0 && (!sameLine || !sameStyle) {
			flush()
		}
		if run.Len() == 0 {
			runSize = t.FontSize
			runFont = t.Font
			runY = t.Y
		}
		run.WriteString(t.S)
	}
	flush()
}

func isBoldFont(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
