// Package worker consumes sort jobs from Kafka, runs them through the
// collator, and publishes the results to the results topic.
package worker

import "time"

// SortJob is the Kafka message payload describing one batch of names to sort.
type SortJob struct {
	JobID string   `json:"job_id"`
	Names []string `json:"names"`
}

// SortResult is published after a job is processed. Error is set (and Sorted
// empty) when the job was rejected, e.g. for an empty name.
type SortResult struct {
	JobID       string    `json:"job_id"`
	Sorted      []string  `json:"sorted,omitempty"`
	Error       string    `json:"error,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}
