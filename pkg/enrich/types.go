package enrich

import "time"

// Request identifies the task to enrich.
type Request struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Type     string     `json:"type"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// Response carries the fields the service inferred for the task.
// Zero values mean the service had no opinion for that field.
type Response struct {
	Genre                string `json:"genre"`
	Importance           string `json:"importance"` // low, medium, high
	SessionMinutes       int    `json:"session_minutes"`
	TotalExpectedMinutes int    `json:"total_expected_minutes"`
}

// ErrorResponse is the error body returned by the enrichment service.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
