package planner

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const fallbackSource = "Fallback data"

var focuses = []string{"Luxury", "Budget", "Adventure", "Cultural", "Relaxation", "Food"}

var airlines = []string{"Delta", "United", "American", "Southwest", "JetBlue"}

var hotelBrands = []string{"Marriott", "Hilton", "Hyatt", "InterContinental", "Holiday Inn"}

var activityPools = map[string][]string{
	"Adventure":  {"Zip Lining", "Hiking", "White Water Rafting", "Rock Climbing"},
	"Cultural":   {"Museum Tour", "Historical Site", "Local Market", "Traditional Show"},
	"Relaxation": {"Spa Day", "Beach Time", "Yoga Session", "Meditation"},
	"Food":       {"Cooking Class", "Food Tour", "Wine Tasting", "Local Restaurant"},
}

// poolKeys is fixed so pool selection draws stay deterministic under an
// injected rand source (map iteration order is not)
var poolKeys = []string{"Adventure", "Cultural", "Relaxation", "Food"}

// indoorAlternatives maps outdoor activities to their bad-weather substitute
var indoorAlternatives = map[string]string{
	"Zip Lining":         "Indoor rock climbing",
	"Hiking":             "Museum visit",
	"White Water Rafting": "Indoor water park",
	"Rock Climbing":      "Indoor rock climbing gym",
	"Beach Time":         "Spa day",
	"Yoga Session":       "Indoor yoga studio",
	"Meditation":         "Wellness center visit",
}

// Synthesize builds req.NumItineraries complete itineraries without the agent.
// Every itinerary is schema-valid by construction and its total_cost stays at
// or under 90% of the budget; the headroom absorbs add-on activity costs,
// which are intentionally not summed into total_cost.
func (e *Engine) Synthesize(req Request, forecast models.Forecast, alerts []string) []models.Itinerary {
	e.mu.Lock()
	defer e.mu.Unlock()

	itineraries := make([]models.Itinerary, 0, req.NumItineraries)
	for i := 0; i < req.NumItineraries; i++ {
		itineraries = append(itineraries, e.synthesizeOne(req, forecast, alerts))
	}
	return itineraries
}

func (e *Engine) synthesizeOne(req Request, forecast models.Forecast, alerts []string) models.Itinerary {
	focus := focuses[e.rng.Intn(len(focuses))]
	flightPrice := float64(200 + e.rng.Intn(401))      // [200,600]
	nightlyPrice := float64(80 + e.rng.Intn(221))      // [80,300]
	totalCost := flightPrice + nightlyPrice*float64(req.NumDays)

	// Budget fit: scale both prices down so the total lands at 90% of budget;
	// floor after scaling keeps the invariant strict.
	if totalCost > req.Budget*0.9 {
		scale := (req.Budget * 0.9) / totalCost
		flightPrice = math.Floor(flightPrice * scale)
		nightlyPrice = math.Floor(nightlyPrice * scale)
		totalCost = flightPrice + nightlyPrice*float64(req.NumDays)
	}

	it := models.Itinerary{
		ID:          uuid.New().String(),
		Title:       fmt.Sprintf("%s %s Experience", focus, req.Destination),
		Focus:       focus,
		Description: fmt.Sprintf("A %d-day %s trip to %s focusing on %s", req.NumDays, strings.ToLower(focus), req.Destination, req.Preferences),
		TotalCost:   totalCost,
		WeatherConsiderations: "Check local weather forecast and plan accordingly. Have indoor alternatives ready.",
		SafetyRecommendations: strings.Join(alerts, " "),
		FlightOptions: []models.FlightOption{
			{
				Airline:  airlines[e.rng.Intn(len(airlines))],
				Price:    flightPrice,
				Duration: fmt.Sprintf("%dh %dm", 2+e.rng.Intn(7), e.rng.Intn(60)),
				Dates:    "Flexible dates",
				Source:   fallbackSource,
			},
		},
		AccommodationOptions: []models.AccommodationOption{
			{
				Name:          fmt.Sprintf("%s %s", hotelBrands[e.rng.Intn(len(hotelBrands))], req.Destination),
				Type:          "Hotel",
				PricePerNight: nightlyPrice,
				TotalPrice:    nightlyPrice * float64(req.NumDays),
				Rating:        math.Round((3.5+e.rng.Float64()*1.5)*10) / 10,
				Location:      "City Center",
				Source:        fallbackSource,
			},
		},
		DailyItinerary:     make(map[string][]models.Activity, req.NumDays),
		UniqueSellingPoint: fmt.Sprintf("Perfect for travelers seeking a %s experience", strings.ToLower(focus)),
	}

	current := req.StartDate
	for day := 1; day <= req.NumDays; day++ {
		dayForecast := forecast[current.Format("2006-01-02")]
		it.DailyItinerary[models.DayLabel(day)] = e.synthesizeDay(req.Destination, focus, dayForecast)
		current = current.AddDate(0, 0, 1)
	}

	return it
}

// synthesizeDay builds the two fixed activity slots for one day
func (e *Engine) synthesizeDay(destination, focus string, dayForecast models.DayForecast) []models.Activity {
	activities := make([]models.Activity, 0, 2)
	for slot := 0; slot < 2; slot++ {
		pool, ok := activityPools[focus]
		if !ok {
			pool = activityPools[poolKeys[e.rng.Intn(len(poolKeys))]]
		}
		name := pool[e.rng.Intn(len(pool))]

		alternative := ""
		if indoor, outdoor := indoorAlternatives[name]; outdoor && dayForecast.Condition.Adverse() {
			alternative = indoor
		}

		activities = append(activities, models.Activity{
			Name:               name,
			Description:        fmt.Sprintf("Enjoy a %s experience in %s", strings.ToLower(name), destination),
			StartTime:          fmt.Sprintf("%02d:00", 9+slot*4),
			EndTime:            fmt.Sprintf("%02d:00", 12+slot*4),
			Location:           fmt.Sprintf("%s City Center", destination),
			Cost:               float64(20 + e.rng.Intn(81)), // [20,100]
			Source:             fallbackSource,
			WeatherAlternative: alternative,
		})
	}
	return activities
}
