package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/models"
)

func sampleItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:                    "it-1",
		Title:                 "Cultural Paris Experience",
		Focus:                 "Cultural",
		TotalCost:             1250,
		WeatherConsiderations: "Pack an umbrella for day two.",
		SafetyRecommendations: "No significant natural disasters reported",
		FlightOptions: []models.FlightOption{
			{Airline: "Air France", Price: 450, Duration: "7h 30m", Dates: "Flexible dates"},
		},
		AccommodationOptions: []models.AccommodationOption{
			{Name: "Hotel Lutetia", Type: "Hotel", PricePerNight: 200, TotalPrice: 400, Rating: 4.6, Location: "City Center"},
		},
		DailyItinerary: map[string][]models.Activity{
			"Day 1": {
				{Name: "Louvre Visit", Description: "Morning at the museum", StartTime: "09:00", EndTime: "12:00", Location: "Rue de Rivoli, Paris", Cost: 25},
			},
			"Day 2": {
				{Name: "Food Tour", Description: "Le Marais tasting walk", StartTime: "13:00", EndTime: "16:00", Location: "", Cost: 80, WeatherAlternative: "Covered market visit"},
			},
		},
		UniqueSellingPoint: "Perfect for travelers seeking a cultural experience",
	}
}

func TestICal(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	data, err := ICal(sampleItinerary(), "Paris", start)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Contains(t, out, "PRODID:-//Travel Planner//Paris//EN\r\n")
	assert.Contains(t, out, "VERSION:2.0\r\n")

	// Day 1 event on the start date, day 2 event on the following day
	assert.Contains(t, out, "DTSTART:20250601T090000\r\n")
	assert.Contains(t, out, "DTEND:20250601T120000\r\n")
	assert.Contains(t, out, "DTSTART:20250602T130000\r\n")
	assert.Contains(t, out, "DTEND:20250602T160000\r\n")

	assert.Contains(t, out, "SUMMARY:Louvre Visit\r\n")
	assert.Contains(t, out, "SUMMARY:Food Tour\r\n")
	// Commas in locations are escaped per RFC 5545
	assert.Contains(t, out, "LOCATION:Rue de Rivoli\\, Paris\r\n")
	// Empty activity location falls back to the destination
	assert.Contains(t, out, "LOCATION:Paris\r\n")

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "END:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "UID:"))
}

func TestICalRejectsMissingDay(t *testing.T) {
	it := sampleItinerary()
	it.DailyItinerary["Day 3"] = it.DailyItinerary["Day 2"]
	delete(it.DailyItinerary, "Day 2")

	_, err := ICal(it, "Paris", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing "Day 2"`)
}

func TestICalRejectsBadTime(t *testing.T) {
	it := sampleItinerary()
	it.DailyItinerary["Day 1"][0].StartTime = "9am"

	_, err := ICal(it, "Paris", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
}

func TestText(t *testing.T) {
	out := Text(sampleItinerary(), "Paris")

	assert.True(t, strings.HasPrefix(out, "TRAVEL ITINERARY FOR PARIS\n"))
	assert.Contains(t, out, "Title: Cultural Paris Experience\n")
	assert.Contains(t, out, "Focus: Cultural\n")
	assert.Contains(t, out, "Total Cost: $1250.00\n")
	assert.Contains(t, out, "Weather Considerations:\nPack an umbrella for day two.\n")
	assert.Contains(t, out, "- Air France: $450.00\n")
	assert.Contains(t, out, "- Hotel Lutetia (Hotel)\n")
	assert.Contains(t, out, "  $200.00/night, Total: $400.00\n")
	assert.Contains(t, out, "  Rating: 4.6/5\n")
	assert.Contains(t, out, "DAY 1:\n")
	assert.Contains(t, out, "- 09:00-12:00: Louvre Visit\n")
	assert.Contains(t, out, "DAY 2:\n")
	assert.Contains(t, out, "  Weather Alternative: Covered market visit\n")
	assert.Contains(t, out, "Unique Selling Point: Perfect for travelers seeking a cultural experience\n")

	// Day 1 never carries the alternative line
	day1 := out[strings.Index(out, "DAY 1:"):strings.Index(out, "DAY 2:")]
	assert.NotContains(t, day1, "Weather Alternative")
}

func TestPDF(t *testing.T) {
	data, err := PDF(sampleItinerary(), "Paris")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output starts with the PDF magic header")
}
