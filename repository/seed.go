package repository

import "github.com/rishindramani/awesome-referrals-sub000/models"

// Seed catalog. Companies and jobs are static; the same records come
// back identically on every restart. IDs are small numeric strings so
// documented examples stay stable.

// DefaultCompanies returns the seed company catalog.
func DefaultCompanies() []*models.Company {
	return []*models.Company{
		{
			ID:          "1",
			Name:        "TechNova",
			LogoURL:     "https://cdn.example.com/logos/technova.png",
			Website:     "https://technova.example.com",
			Industry:    "Software",
			Description: "Cloud infrastructure and developer tooling.",
			Location:    "San Francisco, CA",
		},
		{
			ID:          "2",
			Name:        "DataBridge Analytics",
			LogoURL:     "https://cdn.example.com/logos/databridge.png",
			Website:     "https://databridge.example.com",
			Industry:    "Data & Analytics",
			Description: "Business intelligence platform for mid-market teams.",
			Location:    "New York, NY",
		},
		{
			ID:          "3",
			Name:        "Greenfield Health",
			LogoURL:     "https://cdn.example.com/logos/greenfield.png",
			Website:     "https://greenfieldhealth.example.com",
			Industry:    "Healthcare",
			Description: "Patient scheduling and telehealth software.",
			Location:    "Austin, TX",
		},
		{
			ID:          "4",
			Name:        "Orbital Finance",
			LogoURL:     "https://cdn.example.com/logos/orbital.png",
			Website:     "https://orbitalfinance.example.com",
			Industry:    "Fintech",
			Description: "Payment rails and treasury APIs.",
			Location:    "Seattle, WA",
		},
		{
			ID:          "5",
			Name:        "Copperline Retail",
			LogoURL:     "https://cdn.example.com/logos/copperline.png",
			Website:     "https://copperline.example.com",
			Industry:    "E-commerce",
			Description: "Omnichannel storefront platform.",
			Location:    "Chicago, IL",
		},
	}
}

// DefaultJobs returns the seed job catalog.
func DefaultJobs() []*models.Job {
	return []*models.Job{
		{
			ID:              "1",
			Title:           "Senior Backend Engineer",
			Description:     "Own the core API surface of our infrastructure platform.",
			Requirements:    "5+ years building production services; Go or similar.",
			Location:        "San Francisco, CA",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			SalaryMin:       160000,
			SalaryMax:       210000,
			CompanyID:       "1",
			IsRemote:        false,
			Skills:          []string{"Go", "PostgreSQL", "Kubernetes", "gRPC"},
		},
		{
			ID:              "2",
			Title:           "Data Engineer",
			Description:     "Build and operate the ingestion pipelines behind our BI product.",
			Requirements:    "Experience with batch and streaming pipelines.",
			Location:        "New York, NY",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			SalaryMin:       130000,
			SalaryMax:       165000,
			CompanyID:       "2",
			IsRemote:        true,
			Skills:          []string{"Python", "Airflow", "Spark", "SQL"},
		},
		{
			ID:              "3",
			Title:           "Frontend Developer",
			Description:     "Ship patient-facing scheduling flows end to end.",
			Requirements:    "Strong React fundamentals; accessibility experience a plus.",
			Location:        "Austin, TX",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			SalaryMin:       110000,
			SalaryMax:       145000,
			CompanyID:       "3",
			IsRemote:        true,
			Skills:          []string{"JavaScript", "React", "CSS", "HTML"},
		},
		{
			ID:              "4",
			Title:           "Platform Engineer",
			Description:     "Harden the payment rails that move billions per year.",
			Requirements:    "Distributed systems background; strong on-call hygiene.",
			Location:        "Seattle, WA",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceSenior,
			SalaryMin:       170000,
			SalaryMax:       220000,
			CompanyID:       "4",
			IsRemote:        false,
			Skills:          []string{"Go", "Kafka", "Terraform", "AWS"},
		},
		{
			ID:              "5",
			Title:           "Product Designer",
			Description:     "Design checkout and merchandising experiences.",
			Requirements:    "Portfolio showing shipped e-commerce work.",
			Location:        "Chicago, IL",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceMid,
			SalaryMin:       115000,
			SalaryMax:       140000,
			CompanyID:       "5",
			IsRemote:        true,
			Skills:          []string{"Figma", "Prototyping", "Design Systems"},
		},
		{
			ID:              "6",
			Title:           "DevOps Engineer",
			Description:     "Own CI/CD and runtime reliability for the analytics stack.",
			Requirements:    "Kubernetes in production; infrastructure as code.",
			Location:        "New York, NY",
			JobType:         models.JobTypeContract,
			ExperienceLevel: models.ExperienceSenior,
			SalaryMin:       150000,
			SalaryMax:       185000,
			CompanyID:       "2",
			IsRemote:        true,
			Skills:          []string{"Kubernetes", "Terraform", "AWS", "Go"},
		},
		{
			ID:              "7",
			Title:           "Mobile Engineer",
			Description:     "Build the telehealth companion app.",
			Requirements:    "Shipped at least one React Native app.",
			Location:        "Austin, TX",
			JobType:         models.JobTypeFullTime,
			ExperienceLevel: models.ExperienceEntry,
			SalaryMin:       95000,
			SalaryMax:       120000,
			CompanyID:       "3",
			IsRemote:        false,
			Skills:          []string{"React Native", "TypeScript", "JavaScript"},
		},
		{
			ID:              "8",
			Title:           "Engineering Intern",
			Description:     "Summer internship on the developer tooling team.",
			Requirements:    "CS fundamentals; any systems language.",
			Location:        "San Francisco, CA",
			JobType:         models.JobTypeInternship,
			ExperienceLevel: models.ExperienceEntry,
			SalaryMin:       45000,
			SalaryMax:       60000,
			CompanyID:       "1",
			IsRemote:        false,
			Skills:          []string{"Go", "Git", "Linux"},
		},
	}
}

// DefaultUsers returns the demo accounts seeded at startup. Password
// hashes are filled in by the caller so the bcrypt dependency stays
// out of the storage layer.
func DefaultUsers() []*models.User {
	return []*models.User{
		{
			ID:        "1",
			Email:     "alice.seeker@example.com",
			FirstName: "Alice",
			LastName:  "Nguyen",
			UserType:  models.UserTypeJobSeeker,
		},
		{
			ID:        "2",
			Email:     "bob.referrer@example.com",
			FirstName: "Bob",
			LastName:  "Okafor",
			UserType:  models.UserTypeReferrer,
		},
		{
			ID:        "3",
			Email:     "admin@example.com",
			FirstName: "Ada",
			LastName:  "Admin",
			UserType:  models.UserTypeAdmin,
		},
	}
}
