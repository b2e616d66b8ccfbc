package domain

import "time"

// PassRecord is the outcome of one polling pass.
type PassRecord struct {
	Name       string    `json:"name"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	// Error is empty when the pass succeeded.
	Error string `json:"error,omitempty"`
}
