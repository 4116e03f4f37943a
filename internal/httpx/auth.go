package httpx

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dheeraj4092/Bhuktafoods-Backend/internal/auth"
)

const (
	ctxUserID = "uid"
	ctxAdmin  = "admin"
)

// RequireUser rejects requests without a valid bearer token and stashes the
// token's user identity in the gin context for handlers downstream.
func RequireUser(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{
				Error:   "Authentication failed",
				Details: "Missing bearer token",
			})
			return
		}
		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody{
				Error:   "Authentication failed",
				Details: "Invalid or expired token",
			})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxAdmin, claims.Admin)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorBody{Error: "Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id, or "" when the request was not
// authenticated.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// SetUser injects an identity directly, bypassing token verification. Test
// routers use it in place of RequireUser.
func SetUser(id string, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, id)
		c.Set(ctxAdmin, admin)
		c.Next()
	}
}
