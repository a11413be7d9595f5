package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge/services/booking"
	"concierge/utils"
)

// BookingsHandler serves the persisted-bookings surface.
type BookingsHandler struct {
	Svc booking.SessionService
}

func NewBookingsHandler(svc booking.SessionService) *BookingsHandler {
	return &BookingsHandler{Svc: svc}
}

// List returns all bookings for the requesting user.
func (h *BookingsHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing userId", "query parameter userId is required")
		return
	}

	bookings, err := h.Svc.ListBookings(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Cancel cancels a confirmed booking by ID.
func (h *BookingsHandler) Cancel(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Svc.CancelBooking(c.Request.Context(), bookingID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "bookingID": bookingID})
}
