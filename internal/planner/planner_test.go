package planner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/amprasad/studyplanner/internal/schedule"
)

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeIndex struct {
	source   string
	headings []string
	err      error
	calls    int
}

func (f *fakeIndex) UpsertHeadings(_ context.Context, source string, headings []string) error {
	f.calls++
	f.source = source
	f.headings = headings
	return f.err
}

const sampleDoc = `INTRODUCTION

This course covers graph theory and dynamic programming. Graph theory
appears in nearly every chapter, and dynamic programming underpins the
optimization sections. Expect graph theory exercises throughout.

1. Graph Theory Fundamentals

Vertices, edges, adjacency matrices and traversal. Graph theory again.

2. Dynamic Programming

Memoization, tabulation, optimal substructure.
`

func TestBuildScheduleEndToEnd(t *testing.T) {
	p := New(0, nil, discardLog)
	res, err := p.BuildSchedule(context.Background(), Request{
		Filename:   "course.txt",
		Data:       []byte(sampleDoc),
		TotalHours: 12,
		StartDate:  "2026-09-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Headings) == 0 {
		t.Fatal("expected headings to be extracted")
	}
	if len(res.Schedule) != len(res.Headings) {
		t.Errorf("expected one entry per heading, got %d entries for %d headings",
			len(res.Schedule), len(res.Headings))
	}
	var sum float64
	for _, e := range res.Schedule {
		sum += e.Hours
	}
	if math.Abs(sum-12) > 1e-9 {
		t.Errorf("expected hours to sum to 12, got %f", sum)
	}
	for _, h := range res.Headings {
		if res.Scores[h] < 1.0 {
			t.Errorf("heading %q scored below floor: %f", h, res.Scores[h])
		}
	}
	if res.Schedule[0].Date != "2026-09-01" {
		t.Errorf("expected first entry on start date, got %s", res.Schedule[0].Date)
	}
}

func TestBuildScheduleEmptyDocument(t *testing.T) {
	p := New(0, nil, discardLog)
	res, err := p.BuildSchedule(context.Background(), Request{
		Filename:   "empty.txt",
		Data:       []byte("   \n\n  "),
		TotalHours: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Headings) != 0 {
		t.Errorf("expected no headings, got %v", res.Headings)
	}
	if len(res.Schedule) != 0 {
		t.Errorf("expected empty schedule, got %v", res.Schedule)
	}
}

func TestBuildScheduleValidatesBeforeParsing(t *testing.T) {
	p := New(0, nil, discardLog)

	_, err := p.BuildSchedule(context.Background(), Request{
		Filename:   "course.txt",
		Data:       []byte(sampleDoc),
		TotalHours: 0,
	})
	if !errors.Is(err, schedule.ErrInvalidParameters) {
		t.Errorf("total_hours=0: expected ErrInvalidParameters, got %v", err)
	}

	_, err = p.BuildSchedule(context.Background(), Request{
		Filename:   "course.txt",
		Data:       []byte(sampleDoc),
		TotalHours: 10,
		StartDate:  "not-a-date",
	})
	if !errors.Is(err, schedule.ErrInvalidParameters) {
		t.Errorf("malformed date: expected ErrInvalidParameters, got %v", err)
	}
}

func TestBuildScheduleStoresHeadings(t *testing.T) {
	idx := &fakeIndex{}
	p := New(0, idx, discardLog)
	res, err := p.BuildSchedule(context.Background(), Request{
		Filename:   "course.txt",
		Data:       []byte(sampleDoc),
		TotalHours: 6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.calls != 1 {
		t.Fatalf("expected one upsert call, got %d", idx.calls)
	}
	if idx.source != "course.txt" {
		t.Errorf("unexpected source: %s", idx.source)
	}
	if len(idx.headings) != len(res.Headings) {
		t.Errorf("expected %d headings upserted, got %d", len(res.Headings), len(idx.headings))
	}
}

func TestBuildScheduleIndexFailureIsNonFatal(t *testing.T) {
	idx := &fakeIndex{err: errors.New("connection refused")}
	p := New(0, idx, discardLog)
	res, err := p.BuildSchedule(context.Background(), Request{
		Filename:   "course.txt",
		Data:       []byte(sampleDoc),
		TotalHours: 6,
	})
	if err != nil {
		t.Fatalf("expected schedule despite index failure, got error: %v", err)
	}
	if len(res.Schedule) == 0 {
		t.Error("expected a non-empty schedule")
	}
}
