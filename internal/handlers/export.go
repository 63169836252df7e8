package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/export"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

// ExportHandler renders finalized itineraries as calendar, text, or PDF
type ExportHandler struct{}

// NewExportHandler creates a new ExportHandler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

func (h *ExportHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.ExportRequest, time.Time, bool) {
	var req dto.ExportRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return nil, time.Time{}, false
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination is required")
		return nil, time.Time{}, false
	}

	startDate := time.Now()
	if req.StartDate != "" {
		parsed, err := utils.ParseDate(req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return nil, time.Time{}, false
		}
		startDate = parsed
	}

	return &req, startDate, true
}

// ExportCalendar handles POST /api/export/calendar
// @Summary Export itinerary as iCalendar
// @Description Render an itinerary's daily schedule as an RFC 5545 .ics file
// @Tags export
// @Accept json
// @Produce text/calendar
// @Security BearerAuth
// @Param payload body dto.ExportRequest true "Itinerary to export"
// @Success 200 {string} string "iCalendar document"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/export/calendar [post]
func (h *ExportHandler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, startDate, ok := h.decode(w, r)
	if !ok {
		return
	}

	data, err := export.ICal(&req.Itinerary, req.Destination, startDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Export error", err.Error())
		return
	}

	filename := fmt.Sprintf("%s_itinerary.ics", strings.ReplaceAll(strings.ToLower(req.Destination), " ", "_"))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ExportText handles POST /api/export/text
// @Summary Export itinerary as plain text
// @Description Render an itinerary as a shareable plain-text summary
// @Tags export
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ExportRequest true "Itinerary to export"
// @Success 200 {object} dto.TextExportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/export/text [post]
func (h *ExportHandler) ExportText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	content := export.Text(&req.Itinerary, req.Destination)
	utils.WriteJSONResponse(w, http.StatusOK, dto.TextExportResponse{Content: content})
}

// ExportPDF handles POST /api/export/pdf
// @Summary Export itinerary as PDF
// @Description Render an itinerary as a downloadable PDF document
// @Tags export
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param payload body dto.ExportRequest true "Itinerary to export"
// @Success 200 {string} string "PDF document"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/export/pdf [post]
func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req, _, ok := h.decode(w, r)
	if !ok {
		return
	}

	data, err := export.PDF(&req.Itinerary, req.Destination)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Export error", "Failed to render PDF")
		return
	}

	filename := fmt.Sprintf("%s_itinerary.pdf", strings.ReplaceAll(strings.ToLower(req.Destination), " ", "_"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
