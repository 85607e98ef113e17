package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/booking"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetBookings returns the bookings of ?email=, which must be the caller's own.
func (h *Handler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	decodedEmail, ok := middleware.DecodedEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	if email != decodedEmail {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Bookings.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.Bookings.FindByID(c.Request.Context(), c.Param("id"))
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to retrieve booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBooking runs the candidate through the conflict guard. A duplicate is
// answered with 200 and acknowledged=false, which clients rely on.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = primitive.NilObjectID
	req.Paid = false
	req.TransactionID = ""

	created, err := h.Guard.TryCreate(c.Request.Context(), &req)
	if booking.IsConflict(err) {
		h.Counters.BookingConflict()
		c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": err.Error()})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to create booking")
		return
	}

	h.Counters.BookingCreated()
	h.Notifier.SendBookingConfirmation(created)

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": created.ID.Hex()})
}
