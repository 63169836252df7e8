package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// PlanRequest represents the payload to generate itinerary candidates
type PlanRequest struct {
	Destination    string   `json:"destination"`
	StartDate      string   `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	NumDays        int      `json:"num_days"`
	Budget         float64  `json:"budget"` // USD total
	TravelStyle    []string `json:"travel_style,omitempty"`
	Preferences    string   `json:"preferences,omitempty"`
	NumItineraries int      `json:"num_itineraries,omitempty"` // defaults to the configured count
}

// PlanResponse envelope
type PlanResponse struct {
	Itineraries []models.Itinerary `json:"itineraries"`
}
