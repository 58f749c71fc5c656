// Package planner composes the document-to-schedule pipeline: heading
// extraction, technical-term extraction, difficulty scoring, and time
// allocation. All state is request-scoped; shared collaborators are
// injected once and treated as read-only.
package planner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amprasad/studyplanner/internal/difficulty"
	"github.com/amprasad/studyplanner/internal/document"
	"github.com/amprasad/studyplanner/internal/parser"
	"github.com/amprasad/studyplanner/internal/schedule"
	"github.com/amprasad/studyplanner/internal/terms"
)

// HeadingIndex is the optional vector side channel. Upsert failures are
// logged and never fail a schedule request.
type HeadingIndex interface {
	UpsertHeadings(ctx context.Context, source string, headings []string) error
}

// Planner runs the pipeline with a fixed set of process-wide collaborators.
type Planner struct {
	topK  int
	index HeadingIndex
	log   *slog.Logger

	// ParserOpts tunes format-specific extraction. Set before serving.
	ParserOpts parser.Options
}

func New(topK int, index HeadingIndex, log *slog.Logger) *Planner {
	if topK <= 0 {
		topK = terms.DefaultTopK
	}
	return &Planner{topK: topK, index: index, log: log, ParserOpts: parser.DefaultOptions()}
}

// Request carries one document and its schedule parameters.
type Request struct {
	Filename   string
	Data       []byte
	TotalHours float64
	StartDate  string // optional, YYYY-MM-DD
	TopK       int    // optional override for the term cap
}

// Result is the pipeline output for one document.
type Result struct {
	Filename string             `json:"filename"`
	Headings []string           `json:"headings"`
	Scores   map[string]float64 `json:"difficulty_scores"`
	Schedule []schedule.Entry   `json:"schedule"`
}

// BuildSchedule runs the full pipeline synchronously. Parameter validation
// happens before any extraction work; an empty document flows through to an
// empty schedule rather than an error.
func (p *Planner) BuildSchedule(ctx context.Context, req Request) (*Result, error) {
	if req.TotalHours <= 0 {
		return nil, fmt.Errorf("%w: total hours must be positive, got %g", schedule.ErrInvalidParameters, req.TotalHours)
	}
	start, err := schedule.ParseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	doc, err := p.Extract(req.Filename, req.Data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	techTerms, scores := p.ScoreTopics(doc, req.TopK)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := p.Allocate(doc, scores, req.TotalHours, start)
	if err != nil {
		return nil, err
	}

	p.StoreHeadings(ctx, req.Filename, doc)

	p.log.Info("schedule built",
		"filename", req.Filename,
		"headings", len(doc.Headings),
		"terms", len(techTerms),
		"entries", len(entries),
	)

	return &Result{
		Filename: req.Filename,
		Headings: doc.HeadingTexts(),
		Scores:   scores,
		Schedule: entries,
	}, nil
}

// Extract parses raw document bytes into headings and cleaned full text.
func (p *Planner) Extract(filename string, data []byte) (*document.Document, error) {
	pars, err := parser.ForFileWith(filename, p.ParserOpts)
	if err != nil {
		return nil, err
	}
	return pars.Parse(bytes.NewReader(data), filename)
}

// ScoreTopics derives technical terms from the full text and scores every
// heading. An empty document yields an empty term set and empty score map.
func (p *Planner) ScoreTopics(doc *document.Document, topK int) ([]terms.Term, map[string]float64) {
	if topK <= 0 {
		topK = p.topK
	}
	techTerms := terms.Extract(doc.Text, topK)
	return techTerms, difficulty.Score(doc.Headings, techTerms)
}

// Allocate runs proportional allocation over the scored headings in their
// order of first appearance.
func (p *Planner) Allocate(doc *document.Document, scores map[string]float64, totalHours float64, start time.Time) ([]schedule.Entry, error) {
	topics := make([]schedule.Topic, len(doc.Headings))
	for i, h := range doc.Headings {
		topics[i] = schedule.Topic{Name: h.Text, Score: scores[h.Text]}
	}
	return schedule.Proportional(topics, totalHours, start)
}

// StoreHeadings pushes headings to the vector index when one is configured.
// Failures are logged; they never fail the calling request.
func (p *Planner) StoreHeadings(ctx context.Context, source string, doc *document.Document) {
	if p.index == nil || len(doc.Headings) == 0 {
		return
	}
	if err := p.index.UpsertHeadings(ctx, source, doc.HeadingTexts()); err != nil {
		p.log.Warn("heading index upsert failed", "source", source, "error", err)
	}
}
