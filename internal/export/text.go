package export

import (
	"fmt"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// Text renders a human-readable summary of a finalized itinerary
func Text(it *models.Itinerary, destination string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TRAVEL ITINERARY FOR %s\n", strings.ToUpper(destination))
	b.WriteString("===========================================\n\n")

	fmt.Fprintf(&b, "Title: %s\n", it.Title)
	fmt.Fprintf(&b, "Focus: %s\n", it.Focus)
	fmt.Fprintf(&b, "Total Cost: $%.2f\n\n", it.TotalCost)

	fmt.Fprintf(&b, "Weather Considerations:\n%s\n\n", it.WeatherConsiderations)
	fmt.Fprintf(&b, "Safety Recommendations:\n%s\n\n", it.SafetyRecommendations)

	b.WriteString("FLIGHT OPTIONS:\n")
	for _, f := range it.FlightOptions {
		fmt.Fprintf(&b, "- %s: $%.2f\n", f.Airline, f.Price)
		fmt.Fprintf(&b, "  Duration: %s\n", f.Duration)
		fmt.Fprintf(&b, "  Dates: %s\n", f.Dates)
	}
	b.WriteString("\n")

	b.WriteString("ACCOMMODATION OPTIONS:\n")
	for _, a := range it.AccommodationOptions {
		fmt.Fprintf(&b, "- %s (%s)\n", a.Name, a.Type)
		fmt.Fprintf(&b, "  $%.2f/night, Total: $%.2f\n", a.PricePerNight, a.TotalPrice)
		fmt.Fprintf(&b, "  Rating: %.1f/5\n", a.Rating)
		fmt.Fprintf(&b, "  Location: %s\n", a.Location)
	}
	b.WriteString("\n")

	b.WriteString("DAILY ITINERARY:\n")
	for day := 1; day <= len(it.DailyItinerary); day++ {
		label := models.DayLabel(day)
		fmt.Fprintf(&b, "%s:\n", strings.ToUpper(label))
		for _, act := range it.DailyItinerary[label] {
			fmt.Fprintf(&b, "- %s-%s: %s\n", act.StartTime, act.EndTime, act.Name)
			fmt.Fprintf(&b, "  Cost: $%.2f\n", act.Cost)
			fmt.Fprintf(&b, "  Location: %s\n", act.Location)
			if act.WeatherAlternative != "" {
				fmt.Fprintf(&b, "  Weather Alternative: %s\n", act.WeatherAlternative)
			}
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Unique Selling Point: %s\n", it.UniqueSellingPoint)
	return b.String()
}
