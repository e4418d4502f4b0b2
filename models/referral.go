package models

import "time"

// ReferralStatus represents the status of a referral request
type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusAccepted  ReferralStatus = "accepted"
	ReferralStatusRejected  ReferralStatus = "rejected"
	ReferralStatusCompleted ReferralStatus = "completed"
)

// Terminal reports whether no further transition may leave s.
func (s ReferralStatus) Terminal() bool {
	return s == ReferralStatusRejected || s == ReferralStatusCompleted
}

// ReferralNote is a free-form note appended to a request by either
// participant.
type ReferralNote struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferralRequest represents a seeker's request for a referral to a
// specific job. Job, Referrer and Seeker are denormalized snapshots
// taken at creation time.
type ReferralRequest struct {
	ID              string         `json:"id"`
	JobID           string         `json:"job_id"`
	ReferrerID      string         `json:"referrer_id"`
	SeekerID        string         `json:"seeker_id"`
	Message         string         `json:"message"`
	ResumeURL       string         `json:"resume_url,omitempty"`
	LinkedinProfile string         `json:"linkedin_profile,omitempty"`
	Status          ReferralStatus `json:"status"`
	Job             Job            `json:"job"`
	Referrer        UserSummary    `json:"referrer"`
	Seeker          UserSummary    `json:"seeker"`
	Notes           []ReferralNote `json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
