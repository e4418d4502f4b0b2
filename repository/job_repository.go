package repository

import (
	"context"

	"github.com/rishindramani/awesome-referrals-sub000/models"
)

// JobRepository handles storage operations for job postings. Like
// companies, postings are seeded once and read-only afterwards.
type JobRepository struct {
	jobs []*models.Job
	byID map[string]*models.Job
}

// NewJobRepository creates a job repository over the given seed data.
func NewJobRepository(seed []*models.Job) *JobRepository {
	byID := make(map[string]*models.Job, len(seed))
	for _, j := range seed {
		byID[j.ID] = j
	}
	return &JobRepository{jobs: seed, byID: byID}
}

// List returns all postings in seed order
func (r *JobRepository) List(ctx context.Context) ([]*models.Job, error) {
	out := make([]*models.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

// GetByID retrieves a posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	j, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return j, nil
}

// ListByCompanyID returns all postings of one company in seed order
func (r *JobRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*models.Job, error) {
	var out []*models.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}
