package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
	"github.com/sirupsen/logrus"
)

// CreatePaymentIntent asks the payment provider for an intent covering the
// posted price and returns its client secret.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := services.ToMinorUnits(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret, err := h.Gateway.CreateIntent(c.Request.Context(), amount, h.Currency)
	if errors.Is(err, services.ErrPaymentsDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.Log.WithError(err).WithField("amount", amount).Error("payment intent failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// SavePayment records a completed payment and flags its booking as paid.
func (h *Handler) SavePayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	b, err := h.Bookings.FindByID(ctx, payment.BookingID)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to retrieve booking")
		return
	}
	if email, _ := middleware.DecodedEmail(c); b.Email != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	if b.Paid {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is already paid"})
		return
	}

	payment.Email = b.Email
	payment.CreatedAt = time.Now().UTC()
	if err := h.Payments.Insert(ctx, &payment); err != nil {
		h.fail(c, err, "Failed to save payment")
		return
	}
	if err := h.Bookings.MarkPaid(ctx, payment.BookingID, payment.TransactionID); err != nil {
		h.Log.WithFields(logrus.Fields{
			"payment_id":     payment.ID.Hex(),
			"booking_id":     payment.BookingID,
			"transaction_id": payment.TransactionID,
		}).Warn("payment stored but booking not marked paid")
		h.fail(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": payment.ID.Hex()})
}
