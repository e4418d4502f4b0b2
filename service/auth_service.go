package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/auth"
	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

// AuthService handles registration, login and profile access
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// RegisterInput is the payload for Register
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	UserType  models.UserType
}

// Register creates a new user account. Email uniqueness is enforced
// by the user repository.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if !in.UserType.Valid() {
		return nil, fmt.Errorf("unknown user_type %q: %w", in.UserType, ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters: %w", ErrValidation)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		UserType:     in.UserType,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

// LoginResult carries the issued token alongside the user profile
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Login checks credentials and issues a token. Bad email and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
		}
		return nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Profile returns the user's own profile
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput is the payload for UpdateProfile. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Password  *string
}

// UpdateProfile mutates the caller's profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters: %w", ErrValidation)
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
