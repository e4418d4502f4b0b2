package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

// ReferralService handles the referral request lifecycle
type ReferralService struct {
	referralRepo *repository.ReferralRepository
	jobRepo      *repository.JobRepository
	userRepo     *repository.UserRepository
}

// ReferralServiceOption is a functional option for ReferralService
type ReferralServiceOption func(*ReferralService)

// WithReferralRepository sets the referral repository
func WithReferralRepository(repo *repository.ReferralRepository) ReferralServiceOption {
	return func(s *ReferralService) { s.referralRepo = repo }
}

// WithReferralJobRepository sets the job repository
func WithReferralJobRepository(repo *repository.JobRepository) ReferralServiceOption {
	return func(s *ReferralService) { s.jobRepo = repo }
}

// WithReferralUserRepository sets the user repository
func WithReferralUserRepository(repo *repository.UserRepository) ReferralServiceOption {
	return func(s *ReferralService) { s.userRepo = repo }
}

// NewReferralService creates a new referral service
func NewReferralService(opts ...ReferralServiceOption) *ReferralService {
	s := &ReferralService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateReferralInput is the payload for Create
type CreateReferralInput struct {
	JobID           string
	ReferrerID      string
	Message         string
	ResumeURL       string
	LinkedinProfile string
}

// Create stores a new referral request in the pending state. The job
// and referrer must exist; both are snapshotted onto the record along
// with the seeker taken from the authenticated identity.
func (s *ReferralService) Create(ctx context.Context, seekerID string, in CreateReferralInput) (*models.ReferralRequest, error) {
	job, err := s.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("job %s: %w", in.JobID, ErrNotFound)
		}
		return nil, err
	}

	referrer, err := s.userRepo.GetByID(ctx, in.ReferrerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("referrer %s: %w", in.ReferrerID, ErrNotFound)
		}
		return nil, err
	}
	if in.ReferrerID == seekerID {
		return nil, fmt.Errorf("cannot request a referral from yourself: %w", ErrValidation)
	}

	seeker, err := s.userRepo.GetByID(ctx, seekerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("seeker %s: %w", seekerID, ErrNotFound)
		}
		return nil, err
	}

	req := &models.ReferralRequest{
		JobID:           in.JobID,
		ReferrerID:      in.ReferrerID,
		SeekerID:        seekerID,
		Message:         in.Message,
		ResumeURL:       in.ResumeURL,
		LinkedinProfile: in.LinkedinProfile,
		Status:          models.ReferralStatusPending,
		Job:             *job,
		Referrer:        referrer.Summary(),
		Seeker:          seeker.Summary(),
	}
	if err := s.referralRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// NormalizeStatus maps request-level status spellings onto the stored
// ones. The legacy API says "approved" where the record says
// "accepted".
func NormalizeStatus(raw string) models.ReferralStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "accepted":
		return models.ReferralStatusAccepted
	case "rejected":
		return models.ReferralStatusRejected
	case "completed":
		return models.ReferralStatusCompleted
	case "pending":
		return models.ReferralStatusPending
	default:
		return models.ReferralStatus(raw)
	}
}

// Transition moves a request along the lifecycle. Only the record's
// referrer may act, and only along the listed edges:
//
//	pending  → accepted
//	pending  → rejected
//	accepted → completed
//
// Everything else, including re-applying the current status, is an
// invalid transition.
func (s *ReferralService) Transition(ctx context.Context, id string, target models.ReferralStatus, actorID string) (*models.ReferralRequest, error) {
	req, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ReferrerID != actorID {
		return nil, fmt.Errorf("only the referrer may change the status: %w", ErrForbidden)
	}
	if req.Status.Terminal() {
		return nil, fmt.Errorf("request is already %s: %w", req.Status, ErrInvalidTransition)
	}
	if !transitionAllowed(req.Status, target) {
		return nil, fmt.Errorf("%s → %s: %w", req.Status, target, ErrInvalidTransition)
	}
	return s.referralRepo.UpdateStatus(ctx, id, target)
}

func transitionAllowed(from, to models.ReferralStatus) bool {
	switch from {
	case models.ReferralStatusPending:
		return to == models.ReferralStatusAccepted || to == models.ReferralStatusRejected
	case models.ReferralStatusAccepted:
		return to == models.ReferralStatusCompleted
	default:
		return false
	}
}

// ListForUser returns the caller's requests by participant role:
// sent=true selects requests the caller submitted, received=true
// requests addressed to the caller as referrer. Neither flag yields
// an empty result, not an implicit "all".
func (s *ReferralService) ListForUser(ctx context.Context, actorID string, sent, received bool) ([]*models.ReferralRequest, error) {
	switch {
	case sent:
		return s.referralRepo.ListBySeekerID(ctx, actorID)
	case received:
		return s.referralRepo.ListByReferrerID(ctx, actorID)
	default:
		return []*models.ReferralRequest{}, nil
	}
}

// Get returns one request. Only its participants may read it.
func (s *ReferralService) Get(ctx context.Context, id, actorID string) (*models.ReferralRequest, error) {
	req, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SeekerID != actorID && req.ReferrerID != actorID {
		return nil, fmt.Errorf("actor is not a participant: %w", ErrForbidden)
	}
	return req, nil
}

// Delete withdraws a request. Only the seeker may delete, and only
// while the request is still pending.
func (s *ReferralService) Delete(ctx context.Context, id, actorID string) error {
	req, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if req.SeekerID != actorID {
		return fmt.Errorf("only the seeker may withdraw a request: %w", ErrForbidden)
	}
	if req.Status != models.ReferralStatusPending {
		return fmt.Errorf("only pending requests can be withdrawn: %w", ErrValidation)
	}
	return s.referralRepo.Delete(ctx, id)
}

// AddNote appends a note to a request on behalf of a participant
func (s *ReferralService) AddNote(ctx context.Context, id, actorID, body string) (*models.ReferralRequest, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("note body is required: %w", ErrValidation)
	}
	req, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SeekerID != actorID && req.ReferrerID != actorID {
		return nil, fmt.Errorf("actor is not a participant: %w", ErrForbidden)
	}
	return s.referralRepo.AppendNote(ctx, id, models.ReferralNote{AuthorID: actorID, Body: body})
}

func (s *ReferralService) get(ctx context.Context, id string) (*models.ReferralRequest, error) {
	req, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("referral request %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return req, nil
}
