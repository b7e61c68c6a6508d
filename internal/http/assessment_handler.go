package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"disc-match/internal/domain"
	"disc-match/internal/service"
)

// AssessmentHandler mantiene dependencias para los endpoints de evaluacion.
type AssessmentHandler struct {
	logger        *zap.Logger
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler crea una instancia de AssessmentHandler.
func NewAssessmentHandler(logger *zap.Logger, assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		logger:        logger,
		assessmentSvc: assessmentSvc,
	}
}

// SubmitAssessment maneja POST /submit-assessment.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var req struct {
		Name    string          `json:"name" binding:"required"`
		Answers []domain.Answer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid submit request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.assessmentSvc.Submit(c.Request.Context(), req.Name, req.Answers)
	if err != nil {
		h.logger.Error("submit assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store assessment"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListUsers maneja GET /users.
func (h *AssessmentHandler) ListUsers(c *gin.Context) {
	users, err := h.assessmentSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// DeleteUser maneja DELETE /users/:id.
func (h *AssessmentHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.assessmentSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRespondentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "respondent not found"})
			return
		}
		h.logger.Error("delete user failed", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "respondent deleted"})
}
