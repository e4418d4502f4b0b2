package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/models"

	"github.com/google/uuid"
)

// ReferralRepository handles storage operations for referral requests
type ReferralRepository struct {
	mu    sync.RWMutex
	byID  map[string]*models.ReferralRequest
	order []string
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository() *ReferralRepository {
	return &ReferralRepository{byID: make(map[string]*models.ReferralRequest)}
}

// Create stores a new referral request
func (r *ReferralRepository) Create(ctx context.Context, req *models.ReferralRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Notes == nil {
		req.Notes = []models.ReferralNote{}
	}

	stored := cloneReferral(req)
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

// GetByID retrieves a referral request by ID
func (r *ReferralRepository) GetByID(ctx context.Context, id string) (*models.ReferralRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneReferral(stored), nil
}

// ListBySeekerID returns all requests sent by the given seeker, in
// creation order.
func (r *ReferralRepository) ListBySeekerID(ctx context.Context, seekerID string) ([]*models.ReferralRequest, error) {
	return r.list(func(req *models.ReferralRequest) bool { return req.SeekerID == seekerID })
}

// ListByReferrerID returns all requests received by the given
// referrer, in creation order.
func (r *ReferralRepository) ListByReferrerID(ctx context.Context, referrerID string) ([]*models.ReferralRequest, error) {
	return r.list(func(req *models.ReferralRequest) bool { return req.ReferrerID == referrerID })
}

func (r *ReferralRepository) list(match func(*models.ReferralRequest) bool) ([]*models.ReferralRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.ReferralRequest{}
	for _, id := range r.order {
		if req := r.byID[id]; match(req) {
			out = append(out, cloneReferral(req))
		}
	}
	return out, nil
}

// UpdateStatus sets the request's status and bumps updated_at,
// returning the updated record. Transition legality is the service's
// concern; the repository only stores.
func (r *ReferralRepository) UpdateStatus(ctx context.Context, id string, status models.ReferralStatus) (*models.ReferralRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	stored.Status = status
	stored.UpdatedAt = time.Now().UTC()
	return cloneReferral(stored), nil
}

// AppendNote appends a note to the request and bumps updated_at,
// returning the updated record.
func (r *ReferralRepository) AppendNote(ctx context.Context, id string, note models.ReferralNote) (*models.ReferralRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	note.CreatedAt = time.Now().UTC()
	stored.Notes = append(stored.Notes, note)
	stored.UpdatedAt = note.CreatedAt
	return cloneReferral(stored), nil
}

// Delete removes a referral request
func (r *ReferralRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneReferral(req *models.ReferralRequest) *models.ReferralRequest {
	clone := *req
	clone.Notes = make([]models.ReferralNote, len(req.Notes))
	copy(clone.Notes, req.Notes)
	return &clone
}
