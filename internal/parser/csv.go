package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/amprasad/studyplanner/internal/document"
)

// CSVParser handles CSV topic lists: the first cell of each data row is a
// heading candidate, and all cells feed the full text.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %v", ErrExtractionFailed, err)
	}

	doc := document.New(titleFromFilename(filename))
	if len(records) == 0 {
		return doc, nil
	}

	// First row is assumed to be a header row.
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		doc.AddHeading(row[0])
	}
	for _, row := range records {
		doc.AppendText(strings.Join(row, ", "))
	}

	return doc, nil
}
