package dto

// HealthResponse is the envelope for the health, liveness, and readiness probes
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
