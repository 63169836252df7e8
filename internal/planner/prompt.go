package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// buildPrompt composes the single structured prompt sent to the planning
// agent. The embedded JSON structure is the acceptance contract: responses
// that do not parse into it fall back to synthesis.
func buildPrompt(req Request, forecast models.Forecast, alerts []string) string {
	forecastJSON, _ := json.MarshalIndent(forecast, "", "  ")
	alertsJSON, _ := json.MarshalIndent(alerts, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d different travel itinerary options for:\n", req.NumItineraries)
	fmt.Fprintf(&b, "**Destination:** %s\n", req.Destination)
	fmt.Fprintf(&b, "**Duration:** %d days\n", req.NumDays)
	fmt.Fprintf(&b, "**Start Date:** %s\n", req.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Budget:** $%.0f USD total\n", req.Budget)
	fmt.Fprintf(&b, "**Preferences:** %s\n\n", req.Preferences)

	fmt.Fprintf(&b, "**Weather Forecast:**\n%s\n\n", forecastJSON)
	fmt.Fprintf(&b, "**Natural Disaster Alerts:**\n%s\n\n", alertsJSON)

	b.WriteString("For each itinerary option, provide:\n")
	b.WriteString("1. A descriptive title and focus (e.g., \"Luxury Getaway\", \"Budget Adventure\")\n")
	b.WriteString("2. Flight options with pricing from the connected providers\n")
	b.WriteString("3. Accommodation options with pricing from the connected providers\n")
	b.WriteString("4. Daily itinerary with activities, timing, and costs\n")
	fmt.Fprintf(&b, "5. Total estimated cost (must be under $%.0f)\n", req.Budget)
	b.WriteString("6. A unique selling point for this itinerary\n")
	b.WriteString("7. Weather considerations and alternative plans\n")
	b.WriteString("8. Safety recommendations based on disaster alerts\n\n")

	b.WriteString("Return the response as a JSON array with each itinerary having the following structure:\n")
	b.WriteString(itinerarySchema)
	return b.String()
}

const itinerarySchema = `{
  "id": "unique_id",
  "title": "Itinerary title",
  "focus": "e.g., Luxury, Budget, Adventure, Cultural",
  "description": "Detailed description",
  "total_cost": 0,
  "weather_considerations": "Notes about weather and alternative plans",
  "safety_recommendations": "Notes about safety based on disaster alerts",
  "flight_options": [
    {
      "airline": "Airline name",
      "price": 0,
      "duration": "Flight duration",
      "dates": "Travel dates",
      "source": "Data source"
    }
  ],
  "accommodation_options": [
    {
      "name": "Hotel name",
      "type": "Hotel/Airbnb",
      "price_per_night": 0,
      "total_price": 0,
      "rating": 0,
      "location": "Location details",
      "source": "Data source"
    }
  ],
  "daily_itinerary": {
    "Day 1": [
      {
        "name": "Activity name",
        "description": "Activity details",
        "start_time": "09:00",
        "end_time": "12:00",
        "location": "Activity location",
        "cost": 0,
        "source": "Data source",
        "weather_alternative": "Alternative activity if weather is bad"
      }
    ]
  },
  "unique_selling_point": "What makes this itinerary special"
}`
