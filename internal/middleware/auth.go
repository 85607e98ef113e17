package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/sirupsen/logrus"
)

// DecodedEmailKey is the gin context key holding the verified token email.
const DecodedEmailKey = "decodedEmail"

// Policy is the pre-condition a route places on its caller. A non-empty
// RequireRole implies RequireAuth.
type Policy struct {
	RequireAuth bool
	RequireRole models.Role
}

var (
	Public        = Policy{}
	Authenticated = Policy{RequireAuth: true}
	AdminOnly     = Policy{RequireAuth: true, RequireRole: models.RoleAdmin}
)

func (p Policy) needsAuth() bool {
	return p.RequireAuth || p.RequireRole != models.RoleNone
}

type TokenVerifier interface {
	Verify(token string) (email string, err error)
}

type UserLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authorizer evaluates route policies against bearer tokens and stored roles.
type Authorizer struct {
	tokens TokenVerifier
	users  UserLookup
	log    *logrus.Logger
}

func NewAuthorizer(tokens TokenVerifier, users UserLookup, log *logrus.Logger) *Authorizer {
	return &Authorizer{tokens: tokens, users: users, log: log}
}

// Require returns a middleware enforcing p: a missing token is 401, a token
// that does not verify is 403, and a role mismatch is 403.
func (a *Authorizer) Require(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !p.needsAuth() {
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		email, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.log.WithError(err).WithField("path", c.FullPath()).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Set(DecodedEmailKey, email)

		if p.RequireRole != models.RoleNone {
			user, err := a.users.FindByEmail(c.Request.Context(), email)
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			case err != nil:
				a.log.WithError(err).WithField("email", email).Error("role lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			case user.Role != p.RequireRole:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
		}

		c.Next()
	}
}

// DecodedEmail returns the email of the verified token on this request.
func DecodedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(DecodedEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
