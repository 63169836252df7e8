package models

import "fmt"

// Itinerary represents one complete candidate trip plan. The JSON field names
// are the wire contract shared with the planning agent, so they must not change.
type Itinerary struct {
	ID                    string                `json:"id"`
	Title                 string                `json:"title"`
	Focus                 string                `json:"focus"`
	Description           string                `json:"description"`
	TotalCost             float64               `json:"total_cost"`
	WeatherConsiderations string                `json:"weather_considerations"`
	SafetyRecommendations string                `json:"safety_recommendations"`
	FlightOptions         []FlightOption        `json:"flight_options"`
	AccommodationOptions  []AccommodationOption `json:"accommodation_options"`
	DailyItinerary        map[string][]Activity `json:"daily_itinerary"`
	UniqueSellingPoint    string                `json:"unique_selling_point"`
}

// FlightOption represents a flight candidate within an itinerary
type FlightOption struct {
	Airline  string  `json:"airline"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	Dates    string  `json:"dates"`
	Source   string  `json:"source"`
}

// AccommodationOption represents a lodging candidate within an itinerary
type AccommodationOption struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"` // Hotel | Airbnb
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	Rating        float64 `json:"rating"`
	Location      string  `json:"location"`
	Source        string  `json:"source"`
}

// Activity represents a single scheduled activity within a day plan
type Activity struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	StartTime          string  `json:"start_time"` // HH:MM local
	EndTime            string  `json:"end_time"`   // HH:MM local
	Location           string  `json:"location"`
	Cost               float64 `json:"cost"`
	Source             string  `json:"source"`
	WeatherAlternative string  `json:"weather_alternative"`
}

// DayLabel returns the daily itinerary key for a 1-indexed day number
func DayLabel(day int) string {
	return fmt.Sprintf("Day %d", day)
}

// Day returns the activities planned for a 1-indexed day number
func (i *Itinerary) Day(day int) []Activity {
	return i.DailyItinerary[DayLabel(day)]
}
