// Package handlers contains the Gin HTTP handlers for the API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rishindramani/awesome-referrals-sub000/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Every success response is {status:"success", data:{...}}. Failures
// are {status:"fail", message} for client errors and
// {status:"error", message} for server errors.

func respondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "fail", "message": message})
}

// respondServiceError maps the service error taxonomy onto HTTP
// statuses. Anything outside the taxonomy is a 500 and gets logged;
// the taxonomy errors carry user-facing messages already.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		respondFail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		respondFail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		respondFail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
	default:
		logger.Error("unhandled service error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "internal server error",
		})
	}
}
