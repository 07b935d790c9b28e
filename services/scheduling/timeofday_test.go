package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseTimeOfDayInvalidFormat(t *testing.T) {
	for _, in := range []string{"", "9", "9:0", "09:00:00", "nine:00", "09-00", " 09:00"} {
		_, err := ParseTimeOfDay(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, in)
	}
}

func TestParseTimeOfDayOutOfRange(t *testing.T) {
	for _, in := range []string{"24:00", "25:30", "12:60", "99:99"} {
		_, err := ParseTimeOfDay(in)
		assert.ErrorIs(t, err, ErrOutOfRange, in)
	}
}

func TestFormatTimeOfDayRoundTrip(t *testing.T) {
	for _, min := range []TimeOfDay{0, 5, 540, 750, 1439} {
		back, err := ParseTimeOfDay(FormatTimeOfDay(min))
		require.NoError(t, err)
		assert.Equal(t, min, back)
	}
}

func TestFormatTimeOfDayClamps(t *testing.T) {
	assert.Equal(t, "00:00", FormatTimeOfDay(-10))
	assert.Equal(t, "24:00", FormatTimeOfDay(1440))
	assert.Equal(t, "24:00", FormatTimeOfDay(5000))
}

func TestParseRangeEnd(t *testing.T) {
	got, err := ParseRangeEnd("24:00")
	require.NoError(t, err)
	assert.Equal(t, MinutesPerDay, got)

	got, err = ParseRangeEnd("17:00")
	require.NoError(t, err)
	assert.Equal(t, 1020, got)

	_, err = ParseRangeEnd("24:30")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAddMinutesNoClamp(t *testing.T) {
	assert.Equal(t, 1500, AddMinutes(1440, 60))
	assert.Equal(t, -30, AddMinutes(0, -30))
}
