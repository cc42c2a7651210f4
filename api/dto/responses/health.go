// ABOUTME: Response DTOs for the health endpoint
// ABOUTME: Reports overall status plus per-dependency check results

package responses

// HealthResponse represents the health status of the service
type HealthResponse struct {
	// Status is healthy or unhealthy
	Status string `json:"status" doc:"Overall service health"`

	// Version is the running application version
	Version string `json:"version" doc:"Application version"`

	// Checks maps each dependency to its probe result
	Checks map[string]string `json:"checks" doc:"Per-dependency check results"`

	// Timestamp is when the checks ran, RFC 3339
	Timestamp string `json:"timestamp" doc:"Check time, RFC 3339"`
}
