package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FollowupRequest is the payload for /followup: a free-text question plus
// optional prior-summary context.
type FollowupRequest struct {
	Question string `json:"question" binding:"required"`
	Context  string `json:"context"`
}

// handleFollowup answers one question. The answer is always a string; error
// conditions are rendered as descriptive text because this is the direct
// reply surface to the end user.
func (s *Server) handleFollowup(c *gin.Context) {
	var req FollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer := s.summarizer.AnswerFollowup(c.Request.Context(), req.Question, req.Context)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
