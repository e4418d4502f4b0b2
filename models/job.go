package models

// JobType represents the employment type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// ExperienceLevel represents the seniority of a posting
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

// Job represents a job posting. Postings are seed data and read-only
// at runtime.
type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements"`
	Location        string          `json:"location"`
	JobType         JobType         `json:"job_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SalaryMin       int             `json:"salary_min"`
	SalaryMax       int             `json:"salary_max"`
	CompanyID       string          `json:"company_id"`
	IsRemote        bool            `json:"is_remote"`
	Skills          []string        `json:"skills"`
}

// JobWithCompany is the enriched view returned by the catalog
// endpoints: the posting joined with its company and annotated with
// the caller's save state.
type JobWithCompany struct {
	Job
	Company *Company `json:"company"`
	IsSaved bool     `json:"isSaved"`
}
