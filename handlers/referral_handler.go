package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReferralHandler handles HTTP requests for referral requests
type ReferralHandler struct {
	referralService *service.ReferralService
	logger          *zap.Logger
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralService *service.ReferralService, logger *zap.Logger) *ReferralHandler {
	return &ReferralHandler{referralService: referralService, logger: logger}
}

// CreateReferralRequest is the request body for creating a referral
// request.
type CreateReferralRequest struct {
	JobID           string `json:"job_id" binding:"required"`
	ReferrerID      string `json:"referrer_id" binding:"required"`
	Message         string `json:"message" binding:"required"`
	ResumeURL       string `json:"resume_url"`
	LinkedinProfile string `json:"linkedin_profile"`
}

// Create handles POST /api/referrals
func (h *ReferralHandler) Create(c *gin.Context) {
	var req CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	request, err := h.referralService.Create(c.Request.Context(), middleware.UserID(c), service.CreateReferralInput{
		JobID:           req.JobID,
		ReferrerID:      req.ReferrerID,
		Message:         req.Message,
		ResumeURL:       req.ResumeURL,
		LinkedinProfile: req.LinkedinProfile,
	})
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"request": request})
}

// List handles GET /api/referrals/requests?sent=|received=
func (h *ReferralHandler) List(c *gin.Context) {
	sent, _ := strconv.ParseBool(c.DefaultQuery("sent", "false"))
	received, _ := strconv.ParseBool(c.DefaultQuery("received", "false"))

	requests, err := h.referralService.ListForUser(c.Request.Context(), middleware.UserID(c), sent, received)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"requests": requests})
}

// Get handles GET /api/referrals/requests/:id
func (h *ReferralHandler) Get(c *gin.Context) {
	request, err := h.referralService.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"request": request})
}

// Delete handles DELETE /api/referrals/requests/:id
func (h *ReferralHandler) Delete(c *gin.Context) {
	if err := h.referralService.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "referral request withdrawn"})
}

// Approve handles PUT /api/referrals/requests/:id/approve
func (h *ReferralHandler) Approve(c *gin.Context) {
	h.transition(c, models.ReferralStatusAccepted)
}

// Reject handles PUT /api/referrals/requests/:id/reject
func (h *ReferralHandler) Reject(c *gin.Context) {
	h.transition(c, models.ReferralStatusRejected)
}

// Complete handles PUT /api/referrals/requests/:id/complete
func (h *ReferralHandler) Complete(c *gin.Context) {
	h.transition(c, models.ReferralStatusCompleted)
}

// UpdateStatusRequest is the request body for the generic status
// route.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/referrals/requests/:id/status. The
// body may spell the target as "approved"; it is stored as accepted.
func (h *ReferralHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	target := service.NormalizeStatus(req.Status)
	switch target {
	case models.ReferralStatusAccepted, models.ReferralStatusRejected, models.ReferralStatusCompleted:
	default:
		respondFail(c, http.StatusBadRequest, fmt.Sprintf("unknown status %q", req.Status))
		return
	}
	h.transition(c, target)
}

func (h *ReferralHandler) transition(c *gin.Context, target models.ReferralStatus) {
	request, err := h.referralService.Transition(c.Request.Context(), c.Param("id"), target, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"request": request})
}

// AddNoteRequest is the request body for appending a note
type AddNoteRequest struct {
	Body string `json:"body" binding:"required"`
}

// AddNote handles POST /api/referrals/requests/:id/notes
func (h *ReferralHandler) AddNote(c *gin.Context) {
	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	}

	request, err := h.referralService.AddNote(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Body)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"request": request})
}
