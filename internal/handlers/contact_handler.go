package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) SaveContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contact.ID = primitive.NilObjectID

	if err := h.Contacts.Insert(c.Request.Context(), &contact); err != nil {
		h.fail(c, err, "Failed to save message")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": contact.ID.Hex()})
}
