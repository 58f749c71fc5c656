package schedule

import (
	"errors"
	"math"
	"testing"
	"time"
)

var testStart = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestProportionalEqualScores(t *testing.T) {
	topics := []Topic{
		{Name: "Sorting", Score: 2.5},
		{Name: "Hashing", Score: 2.5},
	}
	entries, err := Proportional(topics, 10, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Hours != 5.0 || entries[1].Hours != 5.0 {
		t.Errorf("expected 5.0 hours each, got %f and %f", entries[0].Hours, entries[1].Hours)
	}
}

func TestProportionalSumExact(t *testing.T) {
	topics := []Topic{
		{Name: "A topic", Score: 1.7},
		{Name: "B topic", Score: 3.3},
		{Name: "C topic", Score: 5.1},
		{Name: "D topic", Score: 2.9},
	}
	const total = 13.0
	entries, err := Proportional(topics, total, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	if math.Abs(sum-total) > 1e-9 {
		t.Errorf("expected hours to sum to %f, got %f", total, sum)
	}
}

func TestProportionalWeightsOrdering(t *testing.T) {
	topics := []Topic{
		{Name: "Easy", Score: 1.0},
		{Name: "Hard", Score: 9.0},
	}
	entries, err := Proportional(topics, 10, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Hours >= entries[1].Hours {
		t.Errorf("harder topic should get more hours: %f vs %f", entries[0].Hours, entries[1].Hours)
	}
	if entries[0].Hours != 1.0 || entries[1].Hours != 9.0 {
		t.Errorf("expected 1.0/9.0 split, got %f/%f", entries[0].Hours, entries[1].Hours)
	}
}

func TestProportionalDatesAdvance(t *testing.T) {
	topics := []Topic{
		{Name: "One topic", Score: 1},
		{Name: "Two topic", Score: 1},
		{Name: "Three topic", Score: 1},
	}
	entries, err := Proportional(topics, 6, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2026-09-01", "2026-09-02", "2026-09-03"}
	for i, e := range entries {
		if e.Date != want[i] {
			t.Errorf("entry[%d]: expected date %s, got %s", i, want[i], e.Date)
		}
	}
}

func TestProportionalScoreFloor(t *testing.T) {
	topics := []Topic{
		{Name: "Zero", Score: 0},
		{Name: "Negative", Score: -3},
	}
	entries, err := Proportional(topics, 8, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Hours != 4.0 || entries[1].Hours != 4.0 {
		t.Errorf("zero-weight topics must still get a fair share, got %f/%f", entries[0].Hours, entries[1].Hours)
	}
}

func TestProportionalTinyBudgetNeverNegative(t *testing.T) {
	// Each non-final share (0.005) rounds up to 0.01, over-allocating the
	// 0.025 budget before the last entry is reached.
	topics := []Topic{
		{Name: "Alpha topic", Score: 1},
		{Name: "Bravo topic", Score: 1},
		{Name: "Charlie topic", Score: 1},
		{Name: "Delta topic", Score: 1},
		{Name: "Echo topic", Score: 1},
	}
	entries, err := Proportional(topics, 0.025, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range entries {
		if e.Hours < 0 {
			t.Errorf("entry %q got negative hours %f", e.Topic, e.Hours)
		}
	}
	if last := entries[len(entries)-1]; last.Hours != 0 {
		t.Errorf("expected clamped last entry, got %f", last.Hours)
	}
}

func TestProportionalEmptyTopics(t *testing.T) {
	entries, err := Proportional(nil, 10, testStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty schedule, got %v", entries)
	}
}

func TestProportionalInvalidBudget(t *testing.T) {
	for _, hours := range []float64{0, -5} {
		_, err := Proportional([]Topic{{Name: "Any topic", Score: 1}}, hours, testStart)
		if !errors.Is(err, ErrInvalidParameters) {
			t.Errorf("total_hours=%f: expected ErrInvalidParameters, got %v", hours, err)
		}
	}
}

func TestCapacityBoundedTruncates(t *testing.T) {
	topics := []Topic{
		{Name: "Topic one"},
		{Name: "Topic two"},
		{Name: "Topic three"},
		{Name: "Topic four"},
	}
	entries, err := CapacityBounded(topics, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected schedule truncated to 2 days, got %d entries", len(entries))
	}
	if entries[0].Day != 1 || entries[1].Day != 2 {
		t.Errorf("expected day indices 1,2, got %d,%d", entries[0].Day, entries[1].Day)
	}
}

func TestCapacityBoundedLength(t *testing.T) {
	topics := []Topic{{Name: "Only topic"}}
	entries, err := CapacityBounded(topics, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected min(len(topics), days) = 1 entry, got %d", len(entries))
	}
}

func TestCapacityBoundedHoursOverride(t *testing.T) {
	topics := []Topic{
		{Name: "Custom topic", Hours: 1.5},
		{Name: "Default topic"},
	}
	entries, err := CapacityBounded(topics, 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Hours != 1.5 {
		t.Errorf("expected per-topic override 1.5, got %f", entries[0].Hours)
	}
	if entries[1].Hours != 3.0 {
		t.Errorf("expected daily default 3.0, got %f", entries[1].Hours)
	}
}

func TestCapacityBoundedInvalidParameters(t *testing.T) {
	topics := []Topic{{Name: "Any topic"}}
	if _, err := CapacityBounded(topics, 0, 3); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("days=0: expected ErrInvalidParameters, got %v", err)
	}
	if _, err := CapacityBounded(topics, -1, 3); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("days=-1: expected ErrInvalidParameters, got %v", err)
	}
	if _, err := CapacityBounded(topics, 5, 0); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("dailyHours=0: expected ErrInvalidParameters, got %v", err)
	}
}

func TestParseStartDate(t *testing.T) {
	got, err := ParseStartDate("2026-09-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format(DateLayout) != "2026-09-15" {
		t.Errorf("unexpected date: %v", got)
	}

	if _, err := ParseStartDate("15/09/2026"); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("expected ErrInvalidParameters for malformed date, got %v", err)
	}

	today, err := ParseStartDate("")
	if err != nil {
		t.Fatalf("unexpected error for empty date: %v", err)
	}
	if today.Format(DateLayout) != time.Now().Format(DateLayout) {
		t.Errorf("expected today for empty date, got %v", today)
	}
}
