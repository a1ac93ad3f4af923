package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amineammari/easyshop-api/auth"
)

const identityKey = "identity"

// RequireAuth rejects the request with 401 unless it carries a valid
// bearer token, and attaches the decoded identity for downstream handlers.
func RequireAuth(c *gin.Context) {
	identity, err := identityFromRequest(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
		c.Abort()
		return
	}
	c.Set(identityKey, *identity)
	c.Next()
}

// OptionalAuth attaches the identity when a valid token is present and
// lets the request through unauthenticated otherwise.
func OptionalAuth(c *gin.Context) {
	if identity, err := identityFromRequest(c); err == nil {
		c.Set(identityKey, *identity)
	}
	c.Next()
}

// CurrentIdentity returns the identity attached by RequireAuth or
// OptionalAuth, if any.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func identityFromRequest(c *gin.Context) (*auth.Identity, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, auth.ErrMissingToken
	}
	return auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Missing token. Please log in."
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	default:
		return "Invalid token"
	}
}
