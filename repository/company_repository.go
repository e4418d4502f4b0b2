package repository

import (
	"context"

	"github.com/rishindramani/awesome-referrals-sub000/models"
)

// CompanyRepository handles storage operations for companies. The
// collection is seeded once and read-only afterwards, so no locking
// is needed.
type CompanyRepository struct {
	companies []*models.Company
	byID      map[string]*models.Company
}

// NewCompanyRepository creates a company repository over the given
// seed data.
func NewCompanyRepository(seed []*models.Company) *CompanyRepository {
	byID := make(map[string]*models.Company, len(seed))
	for _, c := range seed {
		byID[c.ID] = c
	}
	return &CompanyRepository{companies: seed, byID: byID}
}

// List returns all companies in seed order
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	out := make([]*models.Company, len(r.companies))
	copy(out, r.companies)
	return out, nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*models.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}
