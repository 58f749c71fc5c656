package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/amprasad/studyplanner/internal/document"
	"github.com/taylorskalyo/goreader/epub"
)

// EPUBParser handles .epub files. Each spine item is XHTML, so heading and
// text extraction reuses the HTML walker.
type EPUBParser struct{}

func (p *EPUBParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// goreader opens by path, so write to a temp file.
	tmp, err := os.CreateTemp("", "studyplanner-epub-*.epub")
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

	rc, err := epub.OpenReader(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open epub: %v", ErrExtractionFailed, err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("%w: no rootfiles found in epub", ErrExtractionFailed)
	}
	book := rc.Rootfiles[0]

	doc := document.New(titleFromFilename(filename))

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		item, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(item)
		item.Close()
		if err != nil {
			continue
		}
		// Malformed chapters are skipped; the rest of the book still parses.
		_ = parseHTMLInto(doc, bytes.NewReader(data), false)
	}

	return doc, nil
}
