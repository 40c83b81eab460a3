package search

import (
	"sort"
	"time"

	"github.com/nearlive/event-search-service/internal/domain"
)

// effectiveInstant maps an event's start string to the instant used for
// window comparison and ordering. Bare dates count as local end-of-day, the
// same reading the window normalizer gives a "to" bound.
func effectiveInstant(start string, loc *time.Location) (time.Time, bool) {
	if start == "" {
		return time.Time{}, false
	}
	if d, err := time.ParseInLocation(dateLayout, start, loc); err == nil {
		return endOfDay(d).UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, start); err == nil {
		return t.UTC(), true
	}
	// Upstream occasionally omits the zone on local timestamps.
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", start, loc); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// FilterByWindow re-applies the resolved window locally (the upstream is not
// trusted to honor it exactly) and returns the survivors in ascending order
// of effective instant. Events whose start does not parse are dropped.
func FilterByWindow(events []domain.NormalizedEvent, w Window, loc *time.Location) []domain.NormalizedEvent {
	type dated struct {
		ev domain.NormalizedEvent
		at time.Time
	}

	kept := make([]dated, 0, len(events))
	for _, ev := range events {
		at, ok := effectiveInstant(ev.Start, loc)
		if !ok {
			continue
		}
		if at.Before(w.Start) {
			continue
		}
		if w.End != nil && at.After(*w.End) {
			continue
		}
		kept = append(kept, dated{ev: ev, at: at})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].at.Before(kept[j].at) })

	out := make([]domain.NormalizedEvent, 0, len(kept))
	for _, d := range kept {
		out = append(out, d.ev)
	}
	return out
}
