package middleware

import (
	"net/http"

	"go-repairshop/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAuthKey rejects any request whose auth_key query parameter does not
// belong to a registered user. Runs before every protected handler.
func RequireAuthKey(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("auth_key")

		ok, err := gate.Authorize(key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Next()
	}
}
