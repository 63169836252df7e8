package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/models"
)

func TestParseItineraries(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		itineraries, err := parseItineraries(`[{"id":"a","title":"Trip"}]`)
		require.NoError(t, err)
		require.Len(t, itineraries, 1)
		assert.Equal(t, "a", itineraries[0].ID)
	})

	t.Run("array wrapped in prose", func(t *testing.T) {
		raw := "Sure! Here is the plan:\n```json\n[{\"id\":\"b\",\"title\":\"Trip\"}]\n```\nHave fun."
		itineraries, err := parseItineraries(raw)
		require.NoError(t, err)
		require.Len(t, itineraries, 1)
		assert.Equal(t, "b", itineraries[0].ID)
	})

	t.Run("no json at all", func(t *testing.T) {
		_, err := parseItineraries("I could not generate a plan, sorry.")
		require.Error(t, err)
	})

	t.Run("object instead of array", func(t *testing.T) {
		_, err := parseItineraries(`{"id":"a"}`)
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := parseItineraries("")
		require.Error(t, err)
	})
}

func TestValidateItineraries(t *testing.T) {
	const numDays, budget = 2, 1500.0

	valid := func() models.Itinerary { return agentItinerary(numDays, 1200) }

	t.Run("count mismatch", func(t *testing.T) {
		err := validateItineraries([]models.Itinerary{valid()}, numDays, 3, budget)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 3 itineraries")
	})

	t.Run("valid batch", func(t *testing.T) {
		batch := []models.Itinerary{valid(), valid(), valid()}
		assert.NoError(t, validateItineraries(batch, numDays, 3, budget))
	})

	tests := []struct {
		name    string
		mutate  func(*models.Itinerary)
		wantErr string
	}{
		{"missing id", func(it *models.Itinerary) { it.ID = "" }, "missing id"},
		{"missing title", func(it *models.Itinerary) { it.Title = "" }, "missing title"},
		{"negative cost", func(it *models.Itinerary) { it.TotalCost = -1 }, "negative total_cost"},
		{"over budget", func(it *models.Itinerary) { it.TotalCost = budget + 1 }, "exceeds budget"},
		{"no flights", func(it *models.Itinerary) { it.FlightOptions = nil }, "no flight options"},
		{"nameless flight", func(it *models.Itinerary) { it.FlightOptions[0].Airline = "" }, "invalid flight option"},
		{"no accommodations", func(it *models.Itinerary) { it.AccommodationOptions = nil }, "no accommodation options"},
		{"rating out of range", func(it *models.Itinerary) { it.AccommodationOptions[0].Rating = 5.5 }, "invalid accommodation"},
		{"wrong day count", func(it *models.Itinerary) { delete(it.DailyItinerary, "Day 2") }, "expected 2 day plans"},
		{"wrong day key", func(it *models.Itinerary) {
			it.DailyItinerary["Day 3"] = it.DailyItinerary["Day 2"]
			delete(it.DailyItinerary, "Day 2")
		}, `missing "Day 2"`},
		{"empty day", func(it *models.Itinerary) { it.DailyItinerary["Day 2"] = []models.Activity{} }, "no activities"},
		{"nameless activity", func(it *models.Itinerary) { it.DailyItinerary["Day 1"][0].Name = "" }, "missing name"},
		{"negative activity cost", func(it *models.Itinerary) { it.DailyItinerary["Day 1"][0].Cost = -5 }, "negative cost"},
		{"bad start time", func(it *models.Itinerary) { it.DailyItinerary["Day 1"][0].StartTime = "9am" }, "invalid start_time"},
		{"bad end time", func(it *models.Itinerary) { it.DailyItinerary["Day 1"][0].EndTime = "25:00" }, "invalid end_time"},
		{"inverted times", func(it *models.Itinerary) {
			it.DailyItinerary["Day 1"][0].StartTime = "14:00"
			it.DailyItinerary["Day 1"][0].EndTime = "13:00"
		}, "ends before it starts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := valid()
			tt.mutate(&it)
			err := validateItinerary(&it, numDays, budget)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
