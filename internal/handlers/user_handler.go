package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

type SaveUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// SaveUser stores a user on first sign-in. Roles cannot be set here.
func (h *Handler) SaveUser(c *gin.Context) {
	var req SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Phone: req.Phone}
	err := h.Users.Insert(c.Request.Context(), &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": "User already exists"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": user.ID.Hex()})
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdmin reports whether the user with :email holds the admin role. Unknown
// users are simply not admins.
func (h *Handler) IsAdmin(c *gin.Context) {
	user, err := h.Users.FindByEmail(c.Request.Context(), c.Param("email"))
	if isNotFound(err) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to find user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	modified, err := h.Users.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin)
	if isNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "matchedCount": 1, "modifiedCount": modified})
}
