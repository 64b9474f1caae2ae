package handlers

import (
	"errors"
	"net/http"
	"strings"

	"eventsite/internal/models"
	"eventsite/internal/service"

	"github.com/gin-gonic/gin"
)

// userCtxKey is the gin context key the authenticated user is stored under.
const userCtxKey = "user"

// requireAuthentication extracts the bearer token, verifies it and attaches
// the resolved user to the context. The expired and invalid cases keep
// distinct 401 bodies.
func (h *Handler) requireAuthentication(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.VerifyToken(parts[1])
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, service.ErrTokenExpired) {
			msg = "expired token"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}
	if user == nil {
		// Token verified but the account is gone.
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// requireAdmin must run after requireAuthentication. The admin flag comes
// from the store via VerifyToken, never from the token itself, so flag
// changes take effect on the next request.
func (h *Handler) requireAdmin(c *gin.Context) {
	user := currentUser(c)
	if user == nil || !user.Admin {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Need admin privileges to continue",
		})
		return
	}
	c.Next()
}

// currentUser returns the authenticated user from the context, or nil.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
