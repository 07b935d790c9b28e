package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceRangeCoversRange(t *testing.T) {
	// [09:00, 12:00) at 30 minutes: six slots, last one 11:30.
	got := SliceRange(540, 720, 30)
	assert.Equal(t, []TimeOfDay{540, 570, 600, 630, 660, 690}, got)
}

func TestSliceRangeDropsTrailingPartial(t *testing.T) {
	// [09:00, 09:50) at 30 minutes: only 09:00 fits whole.
	got := SliceRange(540, 590, 30)
	assert.Equal(t, []TimeOfDay{540}, got)
}

func TestSliceRangeEmptyCases(t *testing.T) {
	assert.Empty(t, SliceRange(540, 540, 30), "empty range")
	assert.Empty(t, SliceRange(720, 540, 30), "inverted range")
	assert.Empty(t, SliceRange(540, 560, 30), "range shorter than slot")
	assert.Empty(t, SliceRange(540, 720, 0), "zero duration")
	assert.Empty(t, SliceRange(540, 720, 4), "duration below floor")
}

func TestSliceRangeStrings(t *testing.T) {
	got := SliceRangeStrings("09:00", "11:00", 30)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got)
}

func TestSliceRangeStringsBadEndpoints(t *testing.T) {
	assert.Empty(t, SliceRangeStrings("late", "11:00", 30))
	assert.Empty(t, SliceRangeStrings("09:00", "25:00", 30))
}
