// Package planner implements the itinerary generation engine: an AI agent
// path over live tool-provider data, with deterministic fallback synthesis
// whenever the agent path is unavailable or returns output that fails the
// schema gate.
package planner

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"TRAVELPLANNER_BACK-END/internal/models"
	"TRAVELPLANNER_BACK-END/internal/providers"
	"TRAVELPLANNER_BACK-END/internal/weather"
)

// Completer is the language-model capability the agent path needs
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Request holds the validated parameters for one planning run
type Request struct {
	Destination    string
	StartDate      time.Time
	NumDays        int
	Budget         float64 // USD total
	Preferences    string
	NumItineraries int
}

// Validate rejects invalid parameters before any generation begins
func (r Request) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	if r.NumDays < 1 || r.NumDays > 30 {
		return fmt.Errorf("num_days must be between 1 and 30")
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be positive")
	}
	if r.NumItineraries < 1 {
		return fmt.Errorf("num_itineraries must be at least 1")
	}
	return nil
}

// Engine generates itinerary candidates for planning requests. Safe for
// concurrent use; each request is independent and stateless.
type Engine struct {
	weather weather.Service
	agent   Completer
	tools   providers.Pool

	mu  sync.Mutex
	rng *rand.Rand
}

// Options configures an Engine. Weather is required. A nil Agent or nil Tools
// disables the agent path entirely, leaving fallback synthesis. Rand is
// optional and exists for reproducible tests.
type Options struct {
	Weather weather.Service
	Agent   Completer
	Tools   providers.Pool
	Rand    *rand.Rand
}

// New creates an itinerary engine
func New(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		weather: opts.Weather,
		agent:   opts.Agent,
		tools:   opts.Tools,
		rng:     rng,
	}
}

// Generate produces exactly req.NumItineraries valid itineraries. The agent
// path is attempted first; any failure there degrades to fallback synthesis.
// The only errors surfaced to callers are parameter-validation failures.
func (e *Engine) Generate(ctx context.Context, req Request) ([]models.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	forecast, alerts := e.weather.Forecast(req.Destination, req.StartDate, req.NumDays)

	itineraries, err := e.agentItineraries(ctx, req, forecast, alerts)
	if err != nil {
		log.Printf("planner: agent path unavailable, using fallback synthesis: %v", err)
		return e.Synthesize(req, forecast, alerts), nil
	}
	return itineraries, nil
}

// agentItineraries runs the AI path end to end: tool connections, a single
// agent completion, JSON extraction, and the strict schema gate.
func (e *Engine) agentItineraries(ctx context.Context, req Request, forecast models.Forecast, alerts []string) ([]models.Itinerary, error) {
	if e.agent == nil || e.tools == nil {
		return nil, fmt.Errorf("agent path not configured")
	}

	if err := e.tools.ConnectAll(ctx); err != nil {
		return nil, fmt.Errorf("tool providers: %w", err)
	}

	prompt := buildPrompt(req, forecast, alerts)

	raw, err := e.agent.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("agent completion: %w", err)
	}

	itineraries, err := parseItineraries(raw)
	if err != nil {
		return nil, fmt.Errorf("parse agent response: %w", err)
	}

	if err := validateItineraries(itineraries, req.NumDays, req.NumItineraries, req.Budget); err != nil {
		return nil, fmt.Errorf("agent response failed schema gate: %w", err)
	}

	return itineraries, nil
}
