package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("ParsesCalendarDate", func(t *testing.T) {
		parsed, err := ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.September, parsed.Month())
		assert.Equal(t, 15, parsed.Day())
		assert.Equal(t, time.UTC, parsed.Location())
	})

	t.Run("RejectsMalformedDates", func(t *testing.T) {
		for _, input := range []string{"2026-9-15", "15-09-2026", "2026/09/15", "not-a-date", ""} {
			_, err := ParseDate(input)
			assert.Error(t, err, "expected %q to be rejected", input)
		}
	})

	t.Run("RejectsImpossibleDates", func(t *testing.T) {
		_, err := ParseDate("2026-02-30")
		assert.Error(t, err)
	})
}

func TestTruncateToDate(t *testing.T) {
	ts := time.Date(2026, time.March, 3, 17, 45, 12, 999, time.UTC)
	truncated := TruncateToDate(ts)

	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), truncated)
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", FormatDate(parsed))
}

func TestUTCToday(t *testing.T) {
	today := UTCToday()

	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
	assert.Zero(t, today.Second())
}
