// README: Feedback collection handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/feedback"
)

type FeedbackService interface {
	Create(ctx context.Context, cmd feedback.CreateCommand) (*feedback.Feedback, error)
}

type FeedbackHandler struct {
	feedback FeedbackService
}

func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: svc}
}

type feedbackReq struct {
	TravelPlanID string  `json:"travelPlanId"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
	Email        *string `json:"email"`
}

// Create handles POST /api/feedback.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req feedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeInvalidJSON(c)
		return
	}
	cmd := feedback.CreateCommand{TravelPlanID: req.TravelPlanID, Rating: req.Rating}
	if req.Comment != nil {
		cmd.Comment = *req.Comment
	}
	if req.Email != nil {
		cmd.Email = *req.Email
	}
	f, err := h.feedback.Create(c.Request.Context(), cmd)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusCreated, gin.H{
		"id":        f.ID,
		"rating":    f.Rating,
		"createdAt": f.CreatedAt,
	})
}
