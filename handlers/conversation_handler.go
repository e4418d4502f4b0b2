package handlers

import (
	"net/http"

	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHandler handles HTTP requests for conversations and
// messages.
type ConversationHandler struct {
	conversationService *service.ConversationService
	logger              *zap.Logger
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService *service.ConversationService, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService, logger: logger}
}

// List handles GET /api/conversations
func (h *ConversationHandler) List(c *gin.Context) {
	conversations, err := h.conversationService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"conversations": conversations})
}

// StartRequest is the request body for starting (or fetching) a
// conversation with another user.
type StartRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

// Start handles POST /api/conversations. Repeat calls with the same
// peer return the existing conversation.
func (h *ConversationHandler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	conversation, err := h.conversationService.GetOrCreate(c.Request.Context(), middleware.UserID(c), req.ParticipantID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"conversation": conversation})
}

// ListMessages handles GET /api/conversations/:id/messages
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	messages, err := h.conversationService.ListMessages(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"messages": messages})
}

// PostMessageRequest is the request body for sending a message
type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostMessage handles POST /api/conversations/:id/messages
func (h *ConversationHandler) PostMessage(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.conversationService.PostMessage(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"message": message})
}
