package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medagenda/models"
)

func TestDedupSortSlots(t *testing.T) {
	got := DedupSortSlots([]string{"10:00", "09:00", "9:00", "10:30", "10:00"})
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, got)
}

func TestDedupSortSlotsDropsUnparseable(t *testing.T) {
	got := DedupSortSlots([]string{"09:00", "noon", "24:30"})
	assert.Equal(t, []string{"09:00"}, got)
}

func TestDedupSortRanges(t *testing.T) {
	got := DedupSortRanges([]models.TimeRange{
		{Start: "14:00", End: "18:00"},
		{Start: "09:00", End: "12:00"},
		{Start: "09:00", End: "12:00"},
	})
	assert.Equal(t, []models.TimeRange{
		{Start: "09:00", End: "12:00"},
		{Start: "14:00", End: "18:00"},
	}, got)
}

func TestChainRangesForcesContiguity(t *testing.T) {
	// Gap between the blocks closes: the second block starts where the
	// first ended, keeping its length.
	got := ChainRanges([]models.TimeRange{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "12:00"},
	}, 30)
	assert.Equal(t, []models.TimeRange{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	}, got)
}

func TestChainRangesRepairsInverted(t *testing.T) {
	got := ChainRanges([]models.TimeRange{
		{Start: "10:00", End: "09:00"},
	}, 30)
	assert.Equal(t, []models.TimeRange{
		{Start: "10:00", End: "10:30"},
	}, got)
}

func TestChainRangesClampsToDay(t *testing.T) {
	got := ChainRanges([]models.TimeRange{
		{Start: "23:00", End: "23:30"},
		{Start: "23:30", End: "23:50"},
	}, 30)
	assert.Equal(t, []models.TimeRange{
		{Start: "23:00", End: "23:30"},
		{Start: "23:30", End: "24:00"},
	}, got)
}

func TestChainRangesDropsPastMidnight(t *testing.T) {
	got := ChainRanges([]models.TimeRange{
		{Start: "23:00", End: "23:59"},
		{Start: "23:59", End: "23:59"},
	}, 30)
	// The second range would start at 23:59 and span to past midnight; its
	// end clamps to the day boundary.
	assert.Equal(t, []models.TimeRange{
		{Start: "23:00", End: "23:59"},
		{Start: "23:59", End: "24:00"},
	}, got)
}

func TestChainRangesIdempotent(t *testing.T) {
	inputs := [][]models.TimeRange{
		{{Start: "09:00", End: "10:00"}, {Start: "11:00", End: "12:00"}},
		{{Start: "10:00", End: "09:00"}},
		{{Start: "08:00", End: "08:10"}, {Start: "08:05", End: "09:00"}},
		{{Start: "22:00", End: "23:00"}, {Start: "23:00", End: "23:45"}},
		{{Start: "23:00", End: "23:59"}, {Start: "23:59", End: "23:59"}},
	}
	for _, in := range inputs {
		once := ChainRanges(in, 30)
		twice := ChainRanges(once, 30)
		assert.Equal(t, once, twice)
	}
}

func TestSlotsFromDocumentExplicitSlots(t *testing.T) {
	doc := &models.DateAvailability{
		Slots: []string{"10:00", "09:00", "09:00"},
		// Ranges present but ignored once slots exist.
		Ranges: []models.TimeRange{{Start: "13:00", End: "14:00"}},
	}
	assert.Equal(t, []string{"09:00", "10:00"}, SlotsFromDocument(doc, 30))
}

func TestSlotsFromDocumentLegacyRanges(t *testing.T) {
	doc := &models.DateAvailability{
		Ranges:       []models.TimeRange{{Start: "09:00", End: "10:30"}},
		SlotDuration: 30,
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, SlotsFromDocument(doc, 15))
}

func TestSlotsFromDocumentLegacyFallsBackToDefaultDuration(t *testing.T) {
	doc := &models.DateAvailability{
		Ranges: []models.TimeRange{{Start: "09:00", End: "10:00"}},
	}
	assert.Equal(t, []string{"09:00", "09:30"}, SlotsFromDocument(doc, 30))
}

func TestSlotsFromDocumentNil(t *testing.T) {
	assert.Empty(t, SlotsFromDocument(nil, 30))
}
