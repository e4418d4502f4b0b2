package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

// JobService handles catalog queries, relevance search and saved-job
// bookmarks.
type JobService struct {
	jobRepo     *repository.JobRepository
	companyRepo *repository.CompanyRepository
	savedRepo   *repository.SavedJobRepository
}

// JobServiceOption is a functional option for JobService
type JobServiceOption func(*JobService)

// WithJobRepository sets the job repository
func WithJobRepository(repo *repository.JobRepository) JobServiceOption {
	return func(s *JobService) { s.jobRepo = repo }
}

// WithCompanyRepository sets the company repository
func WithCompanyRepository(repo *repository.CompanyRepository) JobServiceOption {
	return func(s *JobService) { s.companyRepo = repo }
}

// WithSavedJobRepository sets the saved-job repository
func WithSavedJobRepository(repo *repository.SavedJobRepository) JobServiceOption {
	return func(s *JobService) { s.savedRepo = repo }
}

// NewJobService creates a new job service
func NewJobService(opts ...JobServiceOption) *JobService {
	s := &JobService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// JobQuery is the parsed query string of a catalog request. Pointer
// fields distinguish "absent" from zero values; absent predicates are
// skipped. All predicates are AND-combined.
type JobQuery struct {
	Title           string
	Company         string
	Location        string
	Remote          *bool
	JobType         string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
	Skills          []string

	// Query switches the sort to relevance mode (title matches
	// first). Only the search endpoint sets it.
	Query string

	SortBy  string
	SortDir string
	Page    int
	Limit   int
}

// JobPage is one page of enriched catalog results
type JobPage struct {
	Jobs       []*models.JobWithCompany `json:"jobs"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"total_pages"`
}

// List runs the catalog pipeline: filter, sort, paginate, enrich.
// viewerID may be empty for unauthenticated callers, in which case
// every isSaved annotation is false.
func (s *JobService) List(ctx context.Context, q JobQuery, viewerID string) (*JobPage, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.filter(ctx, jobs, q)
	if err != nil {
		return nil, err
	}

	if q.Query != "" {
		sortByRelevance(filtered, q.Query)
	} else {
		sortJobs(filtered, q.SortBy, q.SortDir)
	}

	total := len(filtered)
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	enriched, err := s.enrich(ctx, filtered[start:end], viewerID)
	if err != nil {
		return nil, err
	}

	return &JobPage{
		Jobs:       enriched,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// GetByID returns one posting enriched with its company and the
// viewer's save state.
func (s *JobService) GetByID(ctx context.Context, id, viewerID string) (*models.JobWithCompany, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	views, err := s.enrich(ctx, []*models.Job{job}, viewerID)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListByCompanyID returns a company's postings enriched for the viewer
func (s *JobService) ListByCompanyID(ctx context.Context, companyID, viewerID string) ([]*models.JobWithCompany, error) {
	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("company %s: %w", companyID, ErrNotFound)
		}
		return nil, err
	}
	jobs, err := s.jobRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, jobs, viewerID)
}

// Save bookmarks a job for the user. Saving an already-saved job is a
// no-op success; the returned flag reports whether the record already
// existed.
func (s *JobService) Save(ctx context.Context, jobID, userID string) (alreadySaved bool, err error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return false, err
	}

	saved := &models.SavedJob{UserID: userID, JobID: jobID}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Unsave removes a bookmark. Missing bookmarks are NotFound and leave
// the collection unchanged.
func (s *JobService) Unsave(ctx context.Context, jobID, userID string) error {
	if err := s.savedRepo.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("job %s is not saved: %w", jobID, ErrNotFound)
		}
		return err
	}
	return nil
}

// ListSaved returns the user's bookmarked jobs in save order
func (s *JobService) ListSaved(ctx context.Context, userID string) ([]*models.JobWithCompany, error) {
	saved, err := s.savedRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var jobs []*models.Job
	for _, record := range saved {
		job, err := s.jobRepo.GetByID(ctx, record.JobID)
		if err != nil {
			continue // catalog is static, but tolerate a dangling bookmark
		}
		jobs = append(jobs, job)
	}
	return s.enrich(ctx, jobs, userID)
}

// filter applies the AND-combined predicates of q.
func (s *JobService) filter(ctx context.Context, jobs []*models.Job, q JobQuery) ([]*models.Job, error) {
	var companyIDs map[string]bool
	if q.Company != "" {
		companies, err := s.companyRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		companyIDs = make(map[string]bool)
		for _, c := range companies {
			if containsFold(c.Name, q.Company) {
				companyIDs[c.ID] = true
			}
		}
	}

	out := []*models.Job{}
	for _, job := range jobs {
		if q.Title != "" && !containsFold(job.Title, q.Title) {
			continue
		}
		if companyIDs != nil && !companyIDs[job.CompanyID] {
			continue
		}
		if q.Location != "" && !containsFold(job.Location, q.Location) {
			continue
		}
		if q.Remote != nil && job.IsRemote != *q.Remote {
			continue
		}
		if q.JobType != "" && string(job.JobType) != q.JobType {
			continue
		}
		if q.ExperienceLevel != "" && string(job.ExperienceLevel) != q.ExperienceLevel {
			continue
		}
		// Salary is a fits-within filter, not overlap: the posting's
		// floor must clear the requested floor and its ceiling stay
		// under the requested ceiling.
		if q.SalaryMin != nil && job.SalaryMin < *q.SalaryMin {
			continue
		}
		if q.SalaryMax != nil && job.SalaryMax > *q.SalaryMax {
			continue
		}
		if len(q.Skills) > 0 && !matchesAnySkill(job.Skills, q.Skills) {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

// matchesAnySkill reports whether any posting skill equals any
// requested skill, case-insensitively.
func matchesAnySkill(jobSkills, wanted []string) bool {
	for _, have := range jobSkills {
		for _, want := range wanted {
			if strings.EqualFold(have, strings.TrimSpace(want)) {
				return true
			}
		}
	}
	return false
}

// sortJobs orders jobs by the named field. Strings compare
// lexicographically, salaries numerically. Unknown fields fall back
// to id; direction defaults to descending.
func sortJobs(jobs []*models.Job, sortBy, sortDir string) {
	asc := strings.EqualFold(sortDir, "ASC")

	less := func(a, b *models.Job) bool {
		switch sortBy {
		case "title":
			return a.Title < b.Title
		case "location":
			return a.Location < b.Location
		case "job_type":
			return a.JobType < b.JobType
		case "experience_level":
			return a.ExperienceLevel < b.ExperienceLevel
		case "salary_min":
			return a.SalaryMin < b.SalaryMin
		case "salary_max":
			return a.SalaryMax < b.SalaryMax
		case "company_id":
			return a.CompanyID < b.CompanyID
		default:
			return a.ID < b.ID
		}
	}

	sort.Slice(jobs, func(i, j int) bool {
		if asc {
			return less(jobs[i], jobs[j])
		}
		return less(jobs[j], jobs[i])
	})
}

// sortByRelevance is a two-bucket partition: postings whose title
// contains the query come first. No scoring beyond that; order within
// each bucket is preserved.
func sortByRelevance(jobs []*models.Job, query string) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return containsFold(jobs[i].Title, query) && !containsFold(jobs[j].Title, query)
	})
}

// enrich joins each posting with its company and the viewer's save
// state.
func (s *JobService) enrich(ctx context.Context, jobs []*models.Job, viewerID string) ([]*models.JobWithCompany, error) {
	out := make([]*models.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		company, err := s.companyRepo.GetByID(ctx, job.CompanyID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		view := &models.JobWithCompany{Job: *job, Company: company}
		if viewerID != "" {
			view.IsSaved = s.savedRepo.Exists(ctx, viewerID, job.ID)
		}
		out = append(out, view)
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
