package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/amprasad/studyplanner/internal/document"
)

// ErrUnsupportedFormat is returned when no parser exists for a file type.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ErrExtractionFailed is returned when every extraction strategy for a
// supported format has failed.
var ErrExtractionFailed = errors.New("document extraction failed")

// Parser converts raw document bytes into a flat Document of heading
// candidates and cleaned full text.
type Parser interface {
	Parse(r io.Reader, filename string) (*document.Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
	".epub": true,
}

// Options tunes format-specific extraction behavior.
type Options struct {
	// PDFFallbackPdftotext enables the pdftotext fallback when library
	// extraction fails.
	PDFFallbackPdftotext bool
	// HeadingMinFontSize overrides the PDF heading font-size threshold
	// (0 means DefaultHeadingFontSize).
	HeadingMinFontSize float64
}

func DefaultOptions() Options {
	return Options{PDFFallbackPdftotext: true}
}

// ForFile returns the appropriate parser for a filename with default options.
func ForFile(filename string) (Parser, error) {
	return ForFileWith(filename, DefaultOptions())
}

// ForFileWith returns the appropriate parser for a filename.
func ForFileWith(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext, MinHeadingSize: opts.HeadingMinFontSize}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".epub":
		return &EPUBParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
