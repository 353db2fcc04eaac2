package handlers

import (
	"net/http"

	"roadmate/models"
	"roadmate/services/dialogue"
	"roadmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DialogueHandler exposes the conversational turn endpoint.
type DialogueHandler struct {
	Service dialogue.Service
}

func NewDialogueHandler(svc dialogue.Service) *DialogueHandler {
	return &DialogueHandler{Service: svc}
}

// HandleTurn runs one turn of the conversation. A missing session id starts
// a new session; the generated id comes back on the reply so the client can
// continue it.
func (h *DialogueHandler) HandleTurn(c *gin.Context) {
	var req models.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply := h.Service.ProcessTurn(c.Request.Context(), req.SessionID, req.Text)
	c.JSON(http.StatusOK, reply)
}
