package models

import "time"

// Resume represents an uploaded resume file. The URL is what seekers
// pass as resume_url when creating a referral request; the bytes live
// in the configured storage backend.
type Resume struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"-"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
