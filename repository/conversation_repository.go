package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rishindramani/awesome-referrals-sub000/models"

	"github.com/google/uuid"
)

// ConversationRepository handles storage operations for conversations
// and their messages. Direct conversations are keyed by the sorted
// participant pair so one exists per unordered pair.
type ConversationRepository struct {
	mu       sync.RWMutex
	byID     map[string]*models.Conversation
	byPair   map[participantKey]string
	messages map[string][]*models.Message
}

type participantKey struct {
	first  string
	second string
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		byID:     make(map[string]*models.Conversation),
		byPair:   make(map[participantKey]string),
		messages: make(map[string][]*models.Message),
	}
}

// GetOrCreate returns the conversation between the two users,
// creating it on first contact. The second return value reports
// whether a new conversation was created.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, userA, userB string) (*models.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := conversationKey(userA, userB)
	if id, ok := r.byPair[key]; ok {
		return cloneConversation(r.byID[id]), false, nil
	}

	now := time.Now().UTC()
	conv := &models.Conversation{
		ID:           uuid.NewString(),
		Participants: []string{key.first, key.second},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byID[conv.ID] = conv
	r.byPair[key] = conv.ID
	r.messages[conv.ID] = []*models.Message{}
	return cloneConversation(conv), true, nil
}

// GetByID retrieves a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneConversation(conv), nil
}

// ListByParticipant returns the user's conversations, most recently
// active first.
func (r *ConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*models.Conversation{}
	for _, conv := range r.byID {
		if conv.HasParticipant(userID) {
			out = append(out, cloneConversation(conv))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// AppendMessage stores a message and bumps the conversation's
// updated_at. Returns ErrNotFound when the conversation is absent.
func (r *ConversationRepository) AppendMessage(ctx context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.byID[msg.ConversationID]
	if !ok {
		return ErrNotFound
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = time.Now().UTC()

	stored := *msg
	r.messages[conv.ID] = append(r.messages[conv.ID], &stored)
	conv.UpdatedAt = stored.CreatedAt
	return nil
}

// ListMessages returns all messages of a conversation sorted
// ascending by created_at.
func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.messages[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]*models.Message, 0, len(stored))
	for _, msg := range stored {
		clone := *msg
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// conversationKey builds the unordered-pair key for two user IDs.
func conversationKey(a, b string) participantKey {
	if b < a {
		a, b = b, a
	}
	return participantKey{first: a, second: b}
}

func cloneConversation(conv *models.Conversation) *models.Conversation {
	clone := *conv
	clone.Participants = make([]string, len(conv.Participants))
	copy(clone.Participants, conv.Participants)
	return &clone
}
