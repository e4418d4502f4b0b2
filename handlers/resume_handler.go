package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/models"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
	"github.com/rishindramani/awesome-referrals-sub000/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeHandler handles resume upload and download. The returned URL
// is what seekers pass as resume_url when creating a referral
// request.
type ResumeHandler struct {
	resumeRepo       *repository.ResumeRepository
	storage          storage.Storage
	logger           *zap.Logger
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeRepo *repository.ResumeRepository, store storage.Storage, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:  resumeRepo,
		storage:     store,
		logger:      logger,
		maxFileSize: 5 * 1024 * 1024, // 5MB
		allowedMimeTypes: map[string]bool{
			"application/pdf": true,
			"text/plain":      true,
			"application/msword": true,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		},
	}
}

// Upload handles POST /api/resumes (multipart, field "resume")
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respondFail(c, http.StatusBadRequest, "resume file is required")
		return
	}
	if fileHeader.Size > h.maxFileSize {
		respondFail(c, http.StatusBadRequest, fmt.Sprintf("file exceeds %d bytes", h.maxFileSize))
		return
	}

	mimeType := storage.ContentType(fileHeader.Filename)
	if !h.allowedMimeTypes[mimeType] {
		respondFail(c, http.StatusBadRequest, "only pdf, doc, docx and txt resumes are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer file.Close()

	resumeID := uuid.NewString()
	storagePath, err := h.storage.Upload(c.Request.Context(), resumeID, fileHeader.Filename, file)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	resume := &models.Resume{
		ID:          resumeID,
		UserID:      middleware.UserID(c),
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
		URL:         "/api/resumes/" + resumeID,
	}
	if err := h.resumeRepo.Create(c.Request.Context(), resume); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"resume": resume})
}

// Download handles GET /api/resumes/:id
func (h *ResumeHandler) Download(c *gin.Context) {
	resume, err := h.resumeRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "resume not found")
			return
		}
		respondServiceError(c, h.logger, err)
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), resume.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "resume file not found")
			return
		}
		respondServiceError(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Filename))
	c.Header("Content-Type", resume.MimeType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Warn("resume download interrupted", zap.String("resume_id", resume.ID), zap.Error(err))
	}
}
