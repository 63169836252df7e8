package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"TRAVELPLANNER_BACK-END/internal/models"
)

func TestBuildPrompt(t *testing.T) {
	req := testRequest()
	forecast := models.Forecast{
		"2025-06-01": {Condition: models.ConditionRainy, High: 68, Low: 55},
	}
	alerts := []string{"Flood watch in effect for low-lying areas"}

	prompt := buildPrompt(req, forecast, alerts)

	assert.Contains(t, prompt, "Create 3 different travel itinerary options")
	assert.Contains(t, prompt, "**Destination:** Paris")
	assert.Contains(t, prompt, "**Duration:** 3 days")
	assert.Contains(t, prompt, "**Start Date:** 2025-06-01")
	assert.Contains(t, prompt, "**Budget:** $1500 USD total")
	assert.Contains(t, prompt, "art and food")
	assert.Contains(t, prompt, `"Rainy"`)
	assert.Contains(t, prompt, "Flood watch in effect")
	assert.Contains(t, prompt, "must be under $1500")
	// The schema block is the acceptance contract
	assert.Contains(t, prompt, `"daily_itinerary"`)
	assert.Contains(t, prompt, `"weather_alternative"`)
}

func TestBuildPromptFormatsDates(t *testing.T) {
	req := testRequest()
	req.StartDate = time.Date(2025, 12, 24, 15, 30, 0, 0, time.UTC)

	prompt := buildPrompt(req, models.Forecast{}, nil)
	assert.Contains(t, prompt, "**Start Date:** 2025-12-24")
}
