package models

// WeatherCondition is a synthetic forecast condition
type WeatherCondition string

const (
	ConditionSunny        WeatherCondition = "Sunny"
	ConditionPartlyCloudy WeatherCondition = "Partly Cloudy"
	ConditionCloudy       WeatherCondition = "Cloudy"
	ConditionRainy        WeatherCondition = "Rainy"
	ConditionStormy       WeatherCondition = "Stormy"
)

// Adverse reports whether outdoor activities need an indoor alternative
func (c WeatherCondition) Adverse() bool {
	return c == ConditionRainy || c == ConditionStormy
}

// DayForecast is the synthetic forecast for a single day of the trip window
type DayForecast struct {
	Condition       WeatherCondition `json:"condition"`
	High            int              `json:"high"`
	Low             int              `json:"low"`
	Recommendations []string         `json:"recommendations"`
}

// Forecast maps ISO dates (YYYY-MM-DD) to their day forecast
type Forecast map[string]DayForecast
