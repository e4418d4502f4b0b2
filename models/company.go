package models

// Company represents a company entity. Companies are seed data and
// read-only at runtime.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
