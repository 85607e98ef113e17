package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doctor.ID = primitive.NilObjectID

	if err := h.Doctors.Insert(c.Request.Context(), &doctor); err != nil {
		h.fail(c, err, "Failed to create doctor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": doctor.ID.Hex()})
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	err := h.Doctors.Delete(c.Request.Context(), c.Param("id"))
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to delete doctor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 1})
}
