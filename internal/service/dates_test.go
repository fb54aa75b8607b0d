package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	want := time.Date(2030, 3, 14, 0, 0, 0, 0, berlin)

	for _, in := range []string{
		"2030-03-14",
		" 2030-03-14 ",
		"2030-03-14T09:30",
		"2030-03-14T09:30:00",
		"2030-03-14T09:30:00+01:00",
		"2030-03-14T08:30:00.000Z",
	} {
		got, ok := parseCalendarDate(in, berlin)
		require.True(t, ok, in)
		assert.True(t, want.Equal(got), "%s parsed as %s", in, got)
	}

	// 23:30 UTC is already the next day in Berlin.
	got, ok := parseCalendarDate("2030-03-14T23:30:00Z", berlin)
	require.True(t, ok)
	assert.True(t, want.AddDate(0, 0, 1).Equal(got))

	for _, in := range []string{"", "tomorrow", "14/03/2030", "2030-13-01"} {
		_, ok := parseCalendarDate(in, berlin)
		assert.False(t, ok, in)
	}
}

func TestEndOfDay(t *testing.T) {
	day := time.Date(2030, 3, 14, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2030, 3, 14, 23, 59, 59, 999_000_000, time.UTC), endOfDay(day))
}
