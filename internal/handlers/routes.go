package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/middleware"
)

// RegisterRoutes mounts every endpoint on r. authLimit guards the token
// issuing routes; pass nil to leave them unlimited.
func (h *Handler) RegisterRoutes(r gin.IRouter, az *middleware.Authorizer, authLimit gin.HandlerFunc) {
	if authLimit == nil {
		authLimit = func(c *gin.Context) { c.Next() }
	}
	public := az.Require(middleware.Public)
	authed := az.Require(middleware.Authenticated)
	admin := az.Require(middleware.AdminOnly)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})

	r.GET("/appointmentOptions", public, h.GetAppointmentOptions)
	r.GET("/appointmentSpeciality", public, h.GetAppointmentSpeciality)

	r.GET("/bookings", authed, h.GetBookings)
	r.GET("/bookings/:id", public, h.GetBooking)
	r.POST("/bookings", public, h.CreateBooking)

	r.POST("/users", public, h.SaveUser)
	r.GET("/users", admin, h.GetUsers)
	r.GET("/users/admin/:email", public, h.IsAdmin)
	r.PUT("/users/admin/:id", admin, h.MakeAdmin)

	r.GET("/jwt", authLimit, h.IssueToken)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", authLimit, h.Login)
	}

	r.POST("/create-payment-intent", public, h.CreatePaymentIntent)
	r.POST("/payments", authed, h.SavePayment)

	r.POST("/contact", public, h.SaveContact)

	doctors := r.Group("/doctors", admin)
	{
		doctors.GET("", h.GetDoctors)
		doctors.POST("", h.CreateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}
