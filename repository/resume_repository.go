package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/models"

	"github.com/google/uuid"
)

// ResumeRepository handles storage operations for resume records.
// Only the metadata lives here; the file bytes live in the storage
// backend.
type ResumeRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Resume
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{byID: make(map[string]*models.Resume)}
}

// Create stores a new resume record
func (r *ResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	resume.CreatedAt = time.Now().UTC()

	stored := *resume
	r.byID[stored.ID] = &stored
	return nil
}

// GetByID retrieves a resume record by ID
func (r *ResumeRepository) GetByID(ctx context.Context, id string) (*models.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	resume := *stored
	return &resume, nil
}
