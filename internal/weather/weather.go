// Package weather provides the per-day forecast and disaster-risk signal used
// by the itinerary engine. The synthetic implementation stands in for a real
// weather/disaster API; callers depend only on the Service interface.
package weather

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// BaselineAlert is returned when no elevated disaster risk is rolled
const BaselineAlert = "No significant natural disasters reported"

// Service produces the forecast table and disaster alerts for a trip window
type Service interface {
	Forecast(destination string, startDate time.Time, numDays int) (models.Forecast, []string)
}

// temperature bands per condition, degrees Fahrenheit
var conditionBands = map[models.WeatherCondition][2]int{
	models.ConditionSunny:        {75, 95},
	models.ConditionPartlyCloudy: {70, 85},
	models.ConditionCloudy:       {65, 80},
	models.ConditionRainy:        {60, 75},
	models.ConditionStormy:       {55, 70},
}

var conditions = []models.WeatherCondition{
	models.ConditionSunny,
	models.ConditionPartlyCloudy,
	models.ConditionCloudy,
	models.ConditionRainy,
	models.ConditionStormy,
}

var conditionRecommendations = map[models.WeatherCondition][]string{
	models.ConditionSunny: {
		"Perfect day for outdoor activities",
		"Don't forget sunscreen and a hat",
		"Great day for beach or water activities",
	},
	models.ConditionPartlyCloudy: {
		"Good day for outdoor activities",
		"Might want to bring a light jacket",
		"Comfortable conditions for sightseeing",
	},
	models.ConditionCloudy: {
		"Good day for outdoor activities without strong sun",
		"Might want to have indoor alternatives planned",
		"Comfortable temperatures for walking tours",
	},
	models.ConditionRainy: {
		"Plan indoor activities or bring rain gear",
		"Consider museums, galleries, or indoor markets",
		"Check if outdoor activities have rain dates",
	},
	models.ConditionStormy: {
		"Avoid outdoor activities if possible",
		"Consider rescheduling outdoor plans",
		"Have indoor backup plans ready",
	},
}

var elevatedAlerts = []string{
	"Minor earthquake activity reported in the region",
	"Tropical storm warning in effect",
	"Wildfire risk elevated due to dry conditions",
	"Flood watch in effect for low-lying areas",
}

// destinations with elevated disaster probability
var disasterProne = []string{"Japan", "Indonesia", "Philippines", "California", "Florida"}

// Synthetic is the mocked Service implementation
type Synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthetic creates a synthetic oracle seeded from the clock
func NewSynthetic() *Synthetic {
	return NewSyntheticWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSyntheticWithRand creates a synthetic oracle with an injected source,
// used by tests that need reproducible draws
func NewSyntheticWithRand(rng *rand.Rand) *Synthetic {
	return &Synthetic{rng: rng}
}

// Forecast returns one DayForecast per day keyed by ISO date, plus at least one
// disaster-alert string. The first alert is the baseline message unless an
// elevated risk is rolled for a disaster-prone destination.
func (s *Synthetic) Forecast(destination string, startDate time.Time, numDays int) (models.Forecast, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	forecast := make(models.Forecast, numDays)
	current := startDate
	for i := 0; i < numDays; i++ {
		condition := conditions[s.rng.Intn(len(conditions))]
		band := conditionBands[condition]
		high := band[0] + s.rng.Intn(band[1]-band[0]+1)
		low := high - 10 - s.rng.Intn(6) // 10-15 degrees below the high

		forecast[current.Format("2006-01-02")] = models.DayForecast{
			Condition:       condition,
			High:            high,
			Low:             low,
			Recommendations: conditionRecommendations[condition],
		}
		current = current.AddDate(0, 0, 1)
	}

	return forecast, s.disasterAlerts(destination)
}

func (s *Synthetic) disasterAlerts(destination string) []string {
	prone := false
	for _, region := range disasterProne {
		if strings.Contains(destination, region) {
			prone = true
			break
		}
	}

	if prone && s.rng.Float64() > 0.7 {
		return []string{elevatedAlerts[s.rng.Intn(len(elevatedAlerts))]}
	}
	return []string{BaselineAlert}
}
