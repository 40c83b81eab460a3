package search

import "time"

// MaxWindow caps how far End may run past Start.
const MaxWindow = 180 * 24 * time.Hour

// Window is the resolved absolute time window. Start is always set; a nil
// End means the window is open-ended.
type Window struct {
	Start time.Time
	End   *time.Time
}

// ResolveWindow turns optional YYYY-MM-DD bounds into an absolute window.
// A present "from" means local midnight of that date, a present "to" means
// local end-of-day (23:59:59); both are converted to UTC at whole-second
// precision. Reversed bounds are swapped rather than rejected, and the span
// is clamped to MaxWindow. Inputs are assumed pre-validated by ParseQuery.
func ResolveWindow(from, to string, now time.Time, loc *time.Location) Window {
	start := now.UTC().Truncate(time.Second)
	if from != "" {
		if d, err := time.ParseInLocation(dateLayout, from, loc); err == nil {
			start = d.UTC().Truncate(time.Second)
		}
	}

	var end *time.Time
	if to != "" {
		if d, err := time.ParseInLocation(dateLayout, to, loc); err == nil {
			e := endOfDay(d).UTC().Truncate(time.Second)
			end = &e
		}
	}

	if end != nil && start.After(*end) {
		start, *end = *end, start
	}
	if end != nil && end.Sub(start) > MaxWindow {
		e := start.Add(MaxWindow)
		end = &e
	}

	return Window{Start: start, End: end}
}

// endOfDay returns 23:59:59 of the calendar day holding t, in t's location.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
