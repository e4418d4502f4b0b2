package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

func newTestConversationService(t *testing.T) (*ConversationService, *repository.UserRepository) {
	t.Helper()
	userRepo := repository.NewUserRepository()
	return NewConversationService(repository.NewConversationRepository(), userRepo), userRepo
}

func TestConversationGetOrCreate_OnePerPair(t *testing.T) {
	svc, users := newTestConversationService(t)
	alice := mustCreateUser(t, users, "alice@example.com", models.UserTypeJobSeeker)
	bob := mustCreateUser(t, users, "bob@example.com", models.UserTypeReferrer)

	ctx := context.Background()
	first, err := svc.GetOrCreate(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// Same pair, either direction, same conversation.
	again, err := svc.GetOrCreate(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetOrCreate (repeat) failed: %v", err)
	}
	reversed, err := svc.GetOrCreate(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetOrCreate (reversed) failed: %v", err)
	}
	if again.ID != first.ID || reversed.ID != first.ID {
		t.Fatalf("pair produced multiple conversations: %s, %s, %s", first.ID, again.ID, reversed.ID)
	}
}

func TestConversationGetOrCreate_Validation(t *testing.T) {
	svc, users := newTestConversationService(t)
	alice := mustCreateUser(t, users, "alice@example.com", models.UserTypeJobSeeker)

	ctx := context.Background()
	if _, err := svc.GetOrCreate(ctx, alice.ID, alice.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("self conversation: got %v, want ErrValidation", err)
	}
	if _, err := svc.GetOrCreate(ctx, alice.ID, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty peer: got %v, want ErrValidation", err)
	}
	if _, err := svc.GetOrCreate(ctx, alice.ID, "no-such-user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown peer: got %v, want ErrNotFound", err)
	}
}

func TestConversationMessages_OrderAndGuards(t *testing.T) {
	svc, users := newTestConversationService(t)
	alice := mustCreateUser(t, users, "alice@example.com", models.UserTypeJobSeeker)
	bob := mustCreateUser(t, users, "bob@example.com", models.UserTypeReferrer)
	eve := mustCreateUser(t, users, "eve@example.com", models.UserTypeJobSeeker)

	ctx := context.Background()
	conv, err := svc.GetOrCreate(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	bodies := []string{"hi bob", "saw your profile", "thanks alice"}
	senders := []string{alice.ID, alice.ID, bob.ID}
	for i, body := range bodies {
		msg, err := svc.PostMessage(ctx, conv.ID, senders[i], body)
		if err != nil {
			t.Fatalf("PostMessage %d failed: %v", i, err)
		}
		if msg.IsRead {
			t.Fatal("new messages must start unread")
		}
	}

	if _, err := svc.PostMessage(ctx, conv.ID, eve.ID, "let me in"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("outsider post: got %v, want ErrForbidden", err)
	}
	if _, err := svc.PostMessage(ctx, conv.ID, alice.ID, "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("blank message: got %v, want ErrValidation", err)
	}

	msgs, err := svc.ListMessages(ctx, conv.ID, bob.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != len(bodies) {
		t.Fatalf("conversation has %d messages, want %d", len(msgs), len(bodies))
	}
	for i, msg := range msgs {
		if msg.Content != bodies[i] {
			t.Fatalf("message %d = %q, want %q (oldest first)", i, msg.Content, bodies[i])
		}
	}

	if _, err := svc.ListMessages(ctx, conv.ID, eve.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("outsider read: got %v, want ErrForbidden", err)
	}
	if _, err := svc.ListMessages(ctx, "no-such-conversation", alice.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown conversation: got %v, want ErrNotFound", err)
	}
}

func TestConversationList_MostRecentFirst(t *testing.T) {
	svc, users := newTestConversationService(t)
	alice := mustCreateUser(t, users, "alice@example.com", models.UserTypeJobSeeker)
	bob := mustCreateUser(t, users, "bob@example.com", models.UserTypeReferrer)
	carol := mustCreateUser(t, users, "carol@example.com", models.UserTypeReferrer)

	ctx := context.Background()
	withBob, err := svc.GetOrCreate(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	withCarol, err := svc.GetOrCreate(ctx, alice.ID, carol.ID)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// Posting into the older conversation bumps it to the top.
	if _, err := svc.PostMessage(ctx, withBob.ID, alice.ID, "bump"); err != nil {
		t.Fatalf("PostMessage failed: %v", err)
	}

	list, err := svc.List(ctx, alice.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("alice has %d conversations, want 2", len(list))
	}
	if list[0].ID != withBob.ID || list[1].ID != withCarol.ID {
		t.Fatalf("order = [%s, %s], want the bumped conversation first", list[0].ID, list[1].ID)
	}

	// Bob only sees his own.
	bobList, err := svc.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bobList) != 1 || bobList[0].ID != withBob.ID {
		t.Fatalf("bob's list = %+v, want just his conversation with alice", bobList)
	}
}
