package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// IssueToken hands out a bearer token for ?email= when that user is known.
func (h *Handler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	_, err := h.Users.FindByEmail(c.Request.Context(), email)
	if isNotFound(err) {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to find user")
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		h.fail(c, err, "Could not generate token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// RegisterUser creates a password account. The role is never taken from the
// request.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(c, err, "Failed to hash password")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Phone:    req.Phone,
	}
	err = h.Users.Insert(c.Request.Context(), &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), loginReq.Email)
	if isNotFound(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to find user")
		return
	}

	// accounts created through POST /users have no password
	if user.Password == "" || !auth.CheckPasswordHash(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		h.fail(c, err, "Could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token, "user": user})
}
