package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/auth"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

const claimsKey = "claims"

// RequireRole accepts "Authorization: Bearer <token>" signed with secret
// and carrying the given role.
func RequireRole(secret, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.Role != role {
			response.Error(c, 403, "Insufficient role")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the verified token claims, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
