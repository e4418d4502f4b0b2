package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler handles HTTP requests for the job catalog and saved-job
// bookmarks.
type JobHandler struct {
	jobService *service.JobService
	logger     *zap.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, logger: logger}
}

// parseJobQuery turns the request's query string into a JobQuery.
// Unparseable values are treated as absent, matching the lax behavior
// of the original API.
func parseJobQuery(c *gin.Context) service.JobQuery {
	q := service.JobQuery{
		Title:           c.Query("title"),
		Company:         c.Query("company"),
		Location:        c.Query("location"),
		JobType:         c.Query("type"),
		ExperienceLevel: c.Query("experience_level"),
		SortBy:          c.DefaultQuery("sort_by", "id"),
		SortDir:         c.DefaultQuery("sort_dir", "DESC"),
	}

	if v := c.Query("remote"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.Remote = &b
		}
	}
	if v := c.Query("salary_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.SalaryMin = &n
		}
	}
	if v := c.Query("salary_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.SalaryMax = &n
		}
	}
	if v := c.Query("skills"); v != "" {
		q.Skills = strings.Split(v, ",")
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return q
}

// List handles GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	page, err := h.jobService.List(c.Request.Context(), parseJobQuery(c), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, page)
}

// Search handles GET /api/jobs/search. Same pipeline as List, with
// relevance ordering when a free-text query is given.
func (h *JobHandler) Search(c *gin.Context) {
	q := parseJobQuery(c)
	q.Query = c.Query("query")

	page, err := h.jobService.List(c.Request.Context(), q, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, page)
}

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"job": job})
}

// Save handles POST /api/jobs/:id/save. Saving twice is a no-op
// success.
func (h *JobHandler) Save(c *gin.Context) {
	jobID := c.Param("id")
	alreadySaved, err := h.jobService.Save(c.Request.Context(), jobID, middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	message := "job saved"
	if alreadySaved {
		message = "job already saved"
	}
	respondSuccess(c, http.StatusOK, gin.H{"job_id": jobID, "message": message})
}

// Unsave handles DELETE /api/jobs/:id/save
func (h *JobHandler) Unsave(c *gin.Context) {
	jobID := c.Param("id")
	if err := h.jobService.Unsave(c.Request.Context(), jobID, middleware.UserID(c)); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"job_id": jobID, "message": "job unsaved"})
}

// ListSaved handles GET /api/jobs/saved
func (h *JobHandler) ListSaved(c *gin.Context) {
	jobs, err := h.jobService.ListSaved(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"jobs": jobs})
}
