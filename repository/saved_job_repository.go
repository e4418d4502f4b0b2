package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/models"

	"github.com/google/uuid"
)

// SavedJobRepository handles storage operations for saved-job
// bookmarks. The (user_id, job_id) pair is the natural key; at most
// one record exists per pair.
type SavedJobRepository struct {
	mu     sync.RWMutex
	byPair map[pairKey]*models.SavedJob
	order  []pairKey
}

type pairKey struct {
	userID string
	jobID  string
}

// NewSavedJobRepository creates a new saved-job repository
func NewSavedJobRepository() *SavedJobRepository {
	return &SavedJobRepository{byPair: make(map[pairKey]*models.SavedJob)}
}

// Create stores a bookmark. Returns ErrDuplicate when the pair is
// already saved; callers treat that as an idempotent success.
func (r *SavedJobRepository) Create(ctx context.Context, saved *models.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID: saved.UserID, jobID: saved.JobID}
	if _, ok := r.byPair[key]; ok {
		return ErrDuplicate
	}

	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	saved.CreatedAt = time.Now().UTC()

	stored := *saved
	r.byPair[key] = &stored
	r.order = append(r.order, key)
	return nil
}

// Delete removes the bookmark for the pair. Returns ErrNotFound when
// nothing is saved, leaving the collection unchanged.
func (r *SavedJobRepository) Delete(ctx context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID: userID, jobID: jobID}
	if _, ok := r.byPair[key]; !ok {
		return ErrNotFound
	}
	delete(r.byPair, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists reports whether the user has saved the job
func (r *SavedJobRepository) Exists(ctx context.Context, userID, jobID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byPair[pairKey{userID: userID, jobID: jobID}]
	return ok
}

// ListByUserID returns the user's bookmarks in save order
func (r *SavedJobRepository) ListByUserID(ctx context.Context, userID string) ([]*models.SavedJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.SavedJob
	for _, key := range r.order {
		if key.userID != userID {
			continue
		}
		saved := *r.byPair[key]
		out = append(out, &saved)
	}
	return out, nil
}
