package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var berlin = time.FixedZone("UTC+2", 2*60*60)

func TestResolveWindow_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 30, 45, 987654321, time.UTC)

	w := ResolveWindow("", "", now, berlin)

	assert.Equal(t, time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC), w.Start,
		"start defaults to now at whole-second precision")
	assert.Nil(t, w.End, "no to means open-ended window")
}

func TestResolveWindow_SameDay(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	w := ResolveWindow("2025-06-01", "2025-06-01", now, berlin)

	// Local midnight and local end-of-day, converted to UTC.
	assert.Equal(t, time.Date(2025, 5, 31, 22, 0, 0, 0, time.UTC), w.Start)
	require.NotNil(t, w.End)
	assert.Equal(t, time.Date(2025, 6, 1, 21, 59, 59, 0, time.UTC), w.End.UTC())
}

func TestResolveWindow_SwapsReversedBounds(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	w := ResolveWindow("2025-06-30", "2025-06-01", now, time.UTC)

	require.NotNil(t, w.End)
	assert.True(t, w.Start.Before(*w.End) || w.Start.Equal(*w.End))
	assert.Equal(t, time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC), w.Start,
		"reversed bounds swap instants, not calendar dates")
}

func TestResolveWindow_CapsSpan(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	w := ResolveWindow("2025-01-01", "2026-12-31", now, time.UTC)

	require.NotNil(t, w.End)
	assert.Equal(t, MaxWindow, w.End.Sub(w.Start))
}

func TestResolveWindow_OpenEndNeverCapped(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	w := ResolveWindow("2020-01-01", "", now, time.UTC)

	assert.Nil(t, w.End)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
}
