package dto

import "TRAVELPLANNER_BACK-END/internal/models"

// ExportRequest represents the payload to export a finalized itinerary
type ExportRequest struct {
	Destination string           `json:"destination"`
	StartDate   string           `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	Itinerary   models.Itinerary `json:"itinerary"`
}

// TextExportResponse envelope for the plain-text rendition
type TextExportResponse struct {
	Content string `json:"content"`
}
