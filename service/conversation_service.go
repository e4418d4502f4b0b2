package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
)

// ConversationService handles direct conversations and their messages
type ConversationService struct {
	convRepo *repository.ConversationRepository
	userRepo *repository.UserRepository
}

// NewConversationService creates a new conversation service
func NewConversationService(convRepo *repository.ConversationRepository, userRepo *repository.UserRepository) *ConversationService {
	return &ConversationService{convRepo: convRepo, userRepo: userRepo}
}

// GetOrCreate returns the conversation between the caller and peer,
// creating it on first contact. Repeat calls return the same record.
func (s *ConversationService) GetOrCreate(ctx context.Context, actorID, peerID string) (*models.Conversation, error) {
	if peerID == "" {
		return nil, fmt.Errorf("participant_id is required: %w", ErrValidation)
	}
	if peerID == actorID {
		return nil, fmt.Errorf("cannot start a conversation with yourself: %w", ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, peerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", peerID, ErrNotFound)
		}
		return nil, err
	}

	conv, _, err := s.convRepo.GetOrCreate(ctx, actorID, peerID)
	return conv, err
}

// List returns the caller's conversations, most recently active first
func (s *ConversationService) List(ctx context.Context, actorID string) ([]*models.Conversation, error) {
	return s.convRepo.ListByParticipant(ctx, actorID)
}

// PostMessage appends a message to a conversation the caller belongs
// to. New messages start unread and bump the conversation's
// updated_at.
func (s *ConversationService) PostMessage(ctx context.Context, conversationID, senderID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required: %w", ErrValidation)
	}

	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, err
	}
	if !conv.HasParticipant(senderID) {
		return nil, fmt.Errorf("sender is not a participant: %w", ErrForbidden)
	}

	msg := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		IsRead:         false,
	}
	if err := s.convRepo.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns a conversation's messages oldest first. Only
// participants may read them.
func (s *ConversationService) ListMessages(ctx context.Context, conversationID, actorID string) ([]*models.Message, error) {
	conv, err := s.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("conversation %s: %w", conversationID, ErrNotFound)
		}
		return nil, err
	}
	if !conv.HasParticipant(actorID) {
		return nil, fmt.Errorf("actor is not a participant: %w", ErrForbidden)
	}
	return s.convRepo.ListMessages(ctx, conversationID)
}
