package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"disc-match/internal/service"
)

// MatchHandler mantiene dependencias para los endpoints de compatibilidad.
type MatchHandler struct {
	logger   *zap.Logger
	matchSvc *service.MatchService
}

// NewMatchHandler crea una instancia de MatchHandler.
func NewMatchHandler(logger *zap.Logger, matchSvc *service.MatchService) *MatchHandler {
	return &MatchHandler{
		logger:   logger,
		matchSvc: matchSvc,
	}
}

// MatchAI maneja POST /match-ai.
func (h *MatchHandler) MatchAI(c *gin.Context) {
	var req struct {
		User1ID int64 `json:"user1_id" binding:"required"`
		User2ID int64 `json:"user2_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid match request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.matchSvc.MatchPair(c.Request.Context(), req.User1ID, req.User2ID)
	if err != nil {
		if errors.Is(err, service.ErrRespondentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("match pair failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not match users"})
		return
	}

	body := gin.H{
		"user1":         result.User1,
		"user2":         result.User2,
		"compatibility": result.Compatibility,
		"ai_analysis":   result.AIAnalysis,
	}
	// Fallo de narrativa degrada la respuesta, no la rompe: los datos
	// deterministas ya estan calculados y se devuelven igual.
	if result.NarrativeErr != nil {
		body["ai_error"] = narrativeErrorDetail(result.NarrativeErr)
	}
	c.JSON(http.StatusOK, body)
}

// AnalyzeTeam maneja GET /analyze-team.
func (h *MatchHandler) AnalyzeTeam(c *gin.Context) {
	analysis, err := h.matchSvc.AnalyzeTeam(c.Request.Context())
	if err != nil {
		h.logger.Error("analyze team failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze team"})
		return
	}

	if analysis.TotalMembers == 0 {
		c.JSON(http.StatusOK, gin.H{
			"total_members": 0,
			"message":       service.EmptyTeamMessage,
		})
		return
	}

	body := gin.H{
		"total_members": analysis.TotalMembers,
		"distribution":  analysis.Distribution,
		"ai_analysis":   analysis.AIAnalysis,
	}
	if analysis.NarrativeErr != nil {
		body["ai_error"] = narrativeErrorDetail(analysis.NarrativeErr)
	}
	c.JSON(http.StatusOK, body)
}

func narrativeErrorDetail(err error) string {
	if errors.Is(err, service.ErrGenerationTimeout) {
		return "narrative generation timed out"
	}
	return "narrative generation unavailable"
}
