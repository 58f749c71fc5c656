// Package schedule allocates a study-time budget across topics.
//
// Two modes are supported: proportional, where hours follow each topic's
// share of total difficulty and calendar dates advance one day per topic,
// and capacity-bounded, where topics get one day each and enumeration
// truncates at a fixed day ceiling.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidParameters is returned when a budget, day ceiling, or start
// date fails validation. No partial schedule is ever produced alongside it.
var ErrInvalidParameters = errors.New("invalid schedule parameters")

// Topic is a study topic ready for allocation. Score is the difficulty
// weight used in proportional mode; Hours is an optional per-topic override
// for capacity-bounded mode (0 means use the daily ceiling).
type Topic struct {
	Name  string
	Score float64
	Hours float64
}

// Entry is one scheduled unit of study.
type Entry struct {
	Day        int     `json:"day,omitempty"`
	Date       string  `json:"date,omitempty"`
	Topic      string  `json:"topic"`
	Hours      float64 `json:"hours"`
	Difficulty float64 `json:"difficulty,omitempty"`
}

// DateLayout is the wire format for schedule dates.
const DateLayout = "2006-01-02"

// minWeight keeps a zero- or negative-scored topic from losing its share.
const minWeight = 1.0

// ParseStartDate parses an optional ISO-8601 start date. An empty string
// defaults to today; a malformed value fails with ErrInvalidParameters.
func ParseStartDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start date %q is not YYYY-MM-DD", ErrInvalidParameters, s)
	}
	return t, nil
}

// Proportional distributes totalHours across topics in proportion to each
// topic's share of total difficulty. Hours are rounded to 2 decimal places
// and the last entry absorbs the rounding residual, so the sum is exact for
// any budget above the rounding unit; the residual is clamped at zero so no
// entry ever gets negative hours. Dates advance one calendar day per topic
// starting from start.
func Proportional(topics []Topic, totalHours float64, start time.Time) ([]Entry, error) {
	if totalHours <= 0 {
		return nil, fmt.Errorf("%w: total hours must be positive, got %g", ErrInvalidParameters, totalHours)
	}
	if len(topics) == 0 {
		return []Entry{}, nil
	}

	weights := make([]float64, len(topics))
	var totalWeight float64
	for i, t := range topics {
		w := t.Score
		if w < minWeight {
			w = minWeight
		}
		weights[i] = w
		totalWeight += w
	}

	entries := make([]Entry, 0, len(topics))
	var allocated float64
	for i, t := range topics {
		var hours float64
		if i == len(topics)-1 {
			// Earlier shares may round up past the budget; never go negative.
			hours = round2(totalHours - allocated)
			if hours < 0 {
				hours = 0
			}
		} else {
			hours = round2(totalHours * weights[i] / totalWeight)
			allocated += hours
		}
		entries = append(entries, Entry{
			Date:       start.AddDate(0, 0, i).Format(DateLayout),
			Topic:      t.Name,
			Hours:      hours,
			Difficulty: round1(weights[i]),
		})
	}
	return entries, nil
}

// CapacityBounded assigns one topic per day starting at day 1 and stops
// once the day index exceeds days; remaining topics are silently dropped.
// A topic's Hours override is used when set, otherwise dailyHours.
func CapacityBounded(topics []Topic, days int, dailyHours float64) ([]Entry, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: day ceiling must be positive, got %d", ErrInvalidParameters, days)
	}
	if dailyHours <= 0 {
		return nil, fmt.Errorf("%w: daily hours must be positive, got %g", ErrInvalidParameters, dailyHours)
	}

	entries := make([]Entry, 0, min(len(topics), days))
	for i, t := range topics {
		day := i + 1
		if day > days {
			break
		}
		hours := t.Hours
		if hours <= 0 {
			hours = dailyHours
		}
		entries = append(entries, Entry{
			Day:   day,
			Topic: t.Name,
			Hours: round2(hours),
		})
	}
	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
