package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/rishindramani/awesome-referrals-sub000/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &models.User{
		Email:        "Alice@Example.com",
		PasswordHash: "hash",
		FirstName:    "Alice",
		LastName:     "Nguyen",
		UserType:     models.UserTypeJobSeeker,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Create did not assign an id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email stored as %q, want normalized lowercase", user.Email)
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	byEmail, err := repo.GetByEmail(ctx, " ALICE@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if byID.ID != user.ID || byEmail.ID != user.ID {
		t.Fatal("lookups returned a different user")
	}

	// Returned records are copies; mutating one must not leak back.
	byID.FirstName = "Mallory"
	fresh, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fresh.FirstName != "Alice" {
		t.Fatalf("stored record mutated through a returned copy: %q", fresh.FirstName)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := &models.User{Email: "dup@example.com", UserType: models.UserTypeReferrer}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := &models.User{Email: "DUP@example.com", UserType: models.UserTypeReferrer}
	if err := repo.Create(ctx, second); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicate", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &models.User{Email: "edit@example.com", FirstName: "Old", UserType: models.UserTypeJobSeeker}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user.FirstName = "New"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.FirstName != "New" {
		t.Fatalf("first name = %q, want New", stored.FirstName)
	}
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Fatalf("updated_at %v not after created_at %v", stored.UpdatedAt, stored.CreatedAt)
	}

	missing := &models.User{ID: "no-such-user"}
	if err := repo.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("updating a missing user: got %v, want ErrNotFound", err)
	}
}
