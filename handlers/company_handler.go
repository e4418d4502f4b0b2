package handlers

import (
	"errors"
	"net/http"

	"github.com/rishindramani/awesome-referrals-sub000/middleware"
	"github.com/rishindramani/awesome-referrals-sub000/repository"
	"github.com/rishindramani/awesome-referrals-sub000/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanyHandler handles HTTP requests for the company catalog
type CompanyHandler struct {
	companyRepo *repository.CompanyRepository
	jobService  *service.JobService
	logger      *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyRepo *repository.CompanyRepository, jobService *service.JobService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companyRepo: companyRepo, jobService: jobService, logger: logger}
}

// List handles GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyRepo.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"companies": companies})
}

// Get handles GET /api/companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "company not found")
			return
		}
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"company": company})
}

// Jobs handles GET /api/companies/:id/jobs
func (h *CompanyHandler) Jobs(c *gin.Context) {
	jobs, err := h.jobService.ListByCompanyID(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"jobs": jobs})
}
