package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
)

// DecodeJSONRequest decodes the request body into dst, writing a 400 response
// on failure. Callers should return immediately when an error is reported.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}

// ParseDate parses an ISO 8601 date (YYYY-MM-DD or RFC3339)
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GetUserIDFromContext extracts the authenticated user id set by AuthMiddleware
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// GetEmailFromContext extracts the authenticated email set by AuthMiddleware
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyEmail).(string)
	return email, ok
}
