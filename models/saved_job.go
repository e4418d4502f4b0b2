package models

import "time"

// SavedJob is a user's bookmark of a job posting. At most one record
// exists per (user_id, job_id) pair.
type SavedJob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}
