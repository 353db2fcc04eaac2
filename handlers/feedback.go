package handlers

import (
	"errors"
	"net/http"

	"roadmate/services/feedback"
	"roadmate/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler exposes direct feedback submission and weight inspection,
// for clients that offer a preference UI instead of going through the
// conversation.
type FeedbackHandler struct {
	Service feedback.Service
}

func NewFeedbackHandler(svc feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

type feedbackRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// Submit records one vote for a ranking criterion.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.Service.Submit(c.Request.Context(), req.UserID, req.Category); err != nil {
		var invalid *feedback.InvalidCategoryError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error(), "INVALID_CATEGORY")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to record feedback", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

// Counts returns the user's accumulated votes per criterion.
func (h *FeedbackHandler) Counts(c *gin.Context) {
	userID := c.Param("userId")

	counts, err := h.Service.Counts(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to read feedback counts", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "counts": counts})
}
