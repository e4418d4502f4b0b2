package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/auth"
	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(),
		auth.NewTokenManager("test-secret", time.Hour),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "New",
		LastName:  "User",
		UserType:  models.UserTypeJobSeeker,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatal("registered user has no id")
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password stored in the clear")
	}

	result, err := svc.Login(ctx, "new@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" || result.User.ID != user.ID {
		t.Fatalf("login result = %+v, want a token for the registered user", result)
	}
	if !result.ExpiresAt.After(time.Now()) {
		t.Fatalf("token already expired: %v", result.ExpiresAt)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Password: "short", FirstName: "A", LastName: "B",
		UserType: models.UserTypeJobSeeker,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("short password: got %v, want ErrValidation", err)
	}

	_, err = svc.Register(ctx, RegisterInput{
		Email: "a@example.com", Password: "secret123", FirstName: "A", LastName: "B",
		UserType: models.UserType("wizard"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown user_type: got %v, want ErrValidation", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	in := RegisterInput{
		Email: "dup@example.com", Password: "secret123", FirstName: "A", LastName: "B",
		UserType: models.UserTypeReferrer,
	}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	// Case and whitespace do not dodge the uniqueness check.
	in.Email = "  DUP@example.com "
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrValidation) {
		t.Fatalf("duplicate email: got %v, want ErrValidation", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email: "known@example.com", Password: "secret123", FirstName: "A", LastName: "B",
		UserType: models.UserTypeJobSeeker,
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Unknown email and wrong password look the same to the caller.
	for _, tc := range []struct{ email, password string }{
		{"nobody@example.com", "secret123"},
		{"known@example.com", "wrong-password"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("login %s/%s: got %v, want ErrUnauthorized", tc.email, tc.password, err)
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Email: "edit@example.com", Password: "secret123", FirstName: "Old", LastName: "Name",
		UserType: models.UserTypeJobSeeker,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	first := "Updated"
	password := "brand-new-pass"
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{
		FirstName: &first,
		Password:  &password,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.FirstName != "Updated" || updated.LastName != "Name" {
		t.Fatalf("profile = %s %s, want only the first name changed", updated.FirstName, updated.LastName)
	}

	if _, err := svc.Login(ctx, "edit@example.com", "brand-new-pass"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := svc.Login(ctx, "edit@example.com", "secret123"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("login with old password: got %v, want ErrUnauthorized", err)
	}

	short := "tiny"
	if _, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{Password: &short}); !errors.Is(err, ErrValidation) {
		t.Fatalf("short new password: got %v, want ErrValidation", err)
	}
}
