package middleware

import (
	"log"
	"net/http"

	"busbooking/internal/pkg/servicetoken"

	"github.com/gin-gonic/gin"
)

// ServiceTokenAuth protects internal endpoints with a signed short-lived
// service token instead of a user session.
func ServiceTokenAuth(tokens *servicetoken.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			logServiceAuthFailure(c, http.StatusUnauthorized, "missing_auth")
			abortUnauthorized(c, "AUTH_MISSING", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			logServiceAuthFailure(c, http.StatusForbidden, "invalid_token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "AUTH_INVALID", "message": "Invalid service token"},
			})
			return
		}

		c.Set("caller_service", claims.Service)
		c.Next()
	}
}

func logServiceAuthFailure(c *gin.Context, status int, reason string) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	log.Printf("service_auth status=%d request_id=%s reason=%s", status, requestID, reason)
}
