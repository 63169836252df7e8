package planner

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// parseItineraries extracts an itinerary array from free-form agent output.
// The first top-level bracketed span (greedy, first "[" to last "]") is parsed
// strictly; when no span exists the whole text is tried as JSON.
func parseItineraries(raw string) ([]models.Itinerary, error) {
	text := raw
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start != -1 && end > start {
		text = raw[start : end+1]
	}

	var itineraries []models.Itinerary
	if err := json.Unmarshal([]byte(text), &itineraries); err != nil {
		return nil, fmt.Errorf("response is not a JSON itinerary array: %w", err)
	}
	return itineraries, nil
}

// validateItineraries is the strict schema gate applied to agent output
// before it reaches callers. Validity is binary: any violation rejects the
// whole batch and triggers fallback synthesis.
func validateItineraries(itineraries []models.Itinerary, numDays, count int, budget float64) error {
	if len(itineraries) != count {
		return fmt.Errorf("expected %d itineraries, got %d", count, len(itineraries))
	}

	for i := range itineraries {
		if err := validateItinerary(&itineraries[i], numDays, budget); err != nil {
			return fmt.Errorf("itinerary %d: %w", i, err)
		}
	}
	return nil
}

func validateItinerary(it *models.Itinerary, numDays int, budget float64) error {
	if it.ID == "" {
		return fmt.Errorf("missing id")
	}
	if it.Title == "" {
		return fmt.Errorf("missing title")
	}
	if it.TotalCost < 0 {
		return fmt.Errorf("negative total_cost %.2f", it.TotalCost)
	}
	if it.TotalCost > budget {
		return fmt.Errorf("total_cost %.2f exceeds budget %.2f", it.TotalCost, budget)
	}
	if len(it.FlightOptions) == 0 {
		return fmt.Errorf("no flight options")
	}
	for _, f := range it.FlightOptions {
		if f.Airline == "" || f.Price < 0 {
			return fmt.Errorf("invalid flight option %q", f.Airline)
		}
	}
	if len(it.AccommodationOptions) == 0 {
		return fmt.Errorf("no accommodation options")
	}
	for _, a := range it.AccommodationOptions {
		if a.Name == "" || a.PricePerNight < 0 || a.Rating < 0 || a.Rating > 5 {
			return fmt.Errorf("invalid accommodation option %q", a.Name)
		}
	}

	if len(it.DailyItinerary) != numDays {
		return fmt.Errorf("expected %d day plans, got %d", numDays, len(it.DailyItinerary))
	}
	for day := 1; day <= numDays; day++ {
		activities, ok := it.DailyItinerary[models.DayLabel(day)]
		if !ok {
			return fmt.Errorf("missing %q", models.DayLabel(day))
		}
		if len(activities) == 0 {
			return fmt.Errorf("%q has no activities", models.DayLabel(day))
		}
		for _, act := range activities {
			if err := validateActivity(act); err != nil {
				return fmt.Errorf("%s: %w", models.DayLabel(day), err)
			}
		}
	}
	return nil
}

func validateActivity(act models.Activity) error {
	if act.Name == "" {
		return fmt.Errorf("activity missing name")
	}
	if act.Cost < 0 {
		return fmt.Errorf("activity %q has negative cost", act.Name)
	}
	start, err := time.Parse("15:04", act.StartTime)
	if err != nil {
		return fmt.Errorf("activity %q has invalid start_time %q", act.Name, act.StartTime)
	}
	end, err := time.Parse("15:04", act.EndTime)
	if err != nil {
		return fmt.Errorf("activity %q has invalid end_time %q", act.Name, act.EndTime)
	}
	if !end.After(start) {
		return fmt.Errorf("activity %q ends before it starts", act.Name)
	}
	return nil
}
