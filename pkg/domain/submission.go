package domain

import "time"

// SubmissionStatus is open-ended: only "pending" is assigned today, but the
// review pipeline may introduce further states.
type SubmissionStatus string

const SubmissionPending SubmissionStatus = "pending"

// Submission is an accepted contact-form entry. Append-only: never mutated or
// deleted once stored.
type Submission struct {
	ID        string            `json:"id"`
	Fields    map[string]string `json:"fields"`
	Timestamp time.Time         `json:"timestamp"`
	Status    SubmissionStatus  `json:"status"`
}
