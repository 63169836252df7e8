package handlers

import (
	"net/http"
	"strings"
	"time"

	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/planner"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// PlanHandler exposes itinerary generation
type PlanHandler struct {
	engine *planner.Engine
	config *config.Config
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(engine *planner.Engine, cfg *config.Config) *PlanHandler {
	return &PlanHandler{engine: engine, config: cfg}
}

// GenerateItineraries handles POST /api/plan
// @Summary Generate itinerary candidates
// @Description Generate budget-constrained, weather-aware itinerary options for a trip
// @Tags planning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.PlanRequest true "Trip parameters"
// @Success 200 {object} dto.PlanResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/plan [post]
func (h *PlanHandler) GenerateItineraries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.PlanRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination is required")
		return
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := utils.ParseDate(req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		startDate = parsed
	}

	count := req.NumItineraries
	if count == 0 {
		count = h.config.Planner.NumItineraries
	}

	// Travel style tags join the free-text preferences, as one preference string
	preferences := req.Preferences
	if len(req.TravelStyle) > 0 {
		preferences = strings.TrimSpace(preferences + " " + strings.Join(req.TravelStyle, ", "))
	}

	planReq := planner.Request{
		Destination:    req.Destination,
		StartDate:      startDate,
		NumDays:        req.NumDays,
		Budget:         req.Budget,
		Preferences:    preferences,
		NumItineraries: count,
	}

	itineraries, err := h.engine.Generate(r.Context(), planReq)
	if err != nil {
		// Generate only fails on invalid parameters
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanResponse{Itineraries: itineraries})
}
