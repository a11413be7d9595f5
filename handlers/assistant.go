package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"concierge/services/booking"
	"concierge/services/engine"
	"concierge/utils"
)

// AssistantHandler exposes the conversational resolution flow over HTTP.
type AssistantHandler struct {
	Svc booking.SessionService
}

func NewAssistantHandler(svc booking.SessionService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// Resolve parses a free-text booking request and returns the resolved
// outcomes along with a session ID for confirmation.
func (h *AssistantHandler) Resolve(c *gin.Context) {
	var input struct {
		UserID string `json:"userId" binding:"required"`
		Text   string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.ResolveRequest(c.Request.Context(), input.UserID, input.Text)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			utils.JSONError(c, http.StatusBadRequest, "empty booking request", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve request", err.Error())
		return
	}

	c.JSON(http.StatusOK, session)
}

// Confirm persists one outcome of a resolution session as a booking.
func (h *AssistantHandler) Confirm(c *gin.Context) {
	var input struct {
		SessionID    string `json:"sessionId" binding:"required"`
		OutcomeIndex int    `json:"outcomeIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Svc.ConfirmOutcome(c.Request.Context(), input.SessionID, input.OutcomeIndex)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "session not found or expired", err.Error())
		case errors.Is(err, booking.ErrOutcomeIncomplete):
			utils.JSONError(c, http.StatusConflict, "outcome has unresolved fields", err.Error())
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// CancelSession discards an in-flight resolution session.
func (h *AssistantHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "sessionID": sessionID})
}
