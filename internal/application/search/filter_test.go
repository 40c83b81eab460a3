package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearlive/event-search-service/internal/domain"
)

func evStarting(id, start string) domain.NormalizedEvent {
	return domain.NormalizedEvent{ID: id, Start: start}
}

func TestEffectiveInstant(t *testing.T) {
	t.Run("bare_date_is_local_end_of_day", func(t *testing.T) {
		at, ok := effectiveInstant("2025-07-04", berlin)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 7, 4, 21, 59, 59, 0, time.UTC), at)
	})

	t.Run("rfc3339_parsed_directly", func(t *testing.T) {
		at, ok := effectiveInstant("2025-07-04T19:30:00Z", berlin)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 7, 4, 19, 30, 0, 0, time.UTC), at)
	})

	t.Run("zoneless_timestamp_read_in_location", func(t *testing.T) {
		at, ok := effectiveInstant("2025-07-04T19:30:00", berlin)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 7, 4, 17, 30, 0, 0, time.UTC), at)
	})

	t.Run("garbage_does_not_parse", func(t *testing.T) {
		_, ok := effectiveInstant("soon", berlin)
		assert.False(t, ok)
		_, ok = effectiveInstant("", berlin)
		assert.False(t, ok)
	})
}

func TestFilterByWindow(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)
	w := Window{Start: start, End: &end}

	events := []domain.NormalizedEvent{
		evStarting("late", "2025-08-02T10:00:00Z"),
		evStarting("mid", "2025-07-20T20:00:00Z"),
		evStarting("unparsable", "tba"),
		evStarting("early", "2025-07-02T18:00:00Z"),
		evStarting("before", "2025-06-30T23:00:00Z"),
		evStarting("date-only", "2025-07-10"),
	}

	got := FilterByWindow(events, w, time.UTC)

	ids := make([]string, 0, len(got))
	for _, ev := range got {
		ids = append(ids, ev.ID)
	}
	assert.Equal(t, []string{"early", "date-only", "mid"}, ids)
}

func TestFilterByWindow_OpenEnd(t *testing.T) {
	w := Window{Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}

	got := FilterByWindow([]domain.NormalizedEvent{
		evStarting("far-future", "2031-01-01T00:00:00Z"),
		evStarting("past", "2025-06-01T00:00:00Z"),
	}, w, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, "far-future", got[0].ID)
}

func TestFilterByWindow_SortIsChronological(t *testing.T) {
	w := Window{Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	events := []domain.NormalizedEvent{
		evStarting("c", "2025-03-03T00:00:00Z"),
		evStarting("a", "2025-01-02T00:00:00Z"),
		evStarting("b", "2025-02-02T00:00:00Z"),
	}

	got := FilterByWindow(events, w, time.UTC)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		prev, _ := effectiveInstant(got[i-1].Start, time.UTC)
		cur, _ := effectiveInstant(got[i].Start, time.UTC)
		assert.False(t, cur.Before(prev))
	}
}
