package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/booking"
)

// GetAppointmentOptions lists the catalog with each option's slots reduced to
// those still free on ?date=. An unknown or missing date matches no bookings,
// so the full templates come back.
func (h *Handler) GetAppointmentOptions(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Query("date")

	options, err := h.Options.List(ctx)
	if err != nil {
		h.fail(c, err, "Failed to retrieve appointment options")
		return
	}

	alreadyBooked, err := h.Bookings.ListByDate(ctx, date)
	if err != nil {
		h.fail(c, err, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, booking.ComputeAvailability(options, alreadyBooked))
}

// GetAppointmentSpeciality lists the distinct treatment names.
func (h *Handler) GetAppointmentSpeciality(c *gin.Context) {
	names, err := h.Options.Names(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve appointment specialities")
		return
	}

	out := make([]gin.H, 0, len(names))
	for _, n := range names {
		out = append(out, gin.H{"name": n})
	}
	c.JSON(http.StatusOK, out)
}
