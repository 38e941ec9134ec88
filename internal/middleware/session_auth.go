package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/modules/session"

	"github.com/gin-gonic/gin"
)

// SessionAuth guards a route group with a session check for one domain.
// The caller sends its id in X-Owner-Id and the session code as a
// bearer token; on success owner_id is set on the context.
func SessionAuth(sessions *session.Service, d domain.SessionDomain) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := strconv.ParseInt(c.GetHeader("X-Owner-Id"), 10, 64)
		if err != nil || ownerID <= 0 {
			abortUnauthorized(c, "AUTH_MISSING", "X-Owner-Id header is required")
			return
		}

		code, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "AUTH_MISSING", "Authorization header must be 'Bearer <session code>'")
			return
		}

		status, err := sessions.Check(c.Request.Context(), d, ownerID, code)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Session check failed"},
			})
			return
		}

		switch status {
		case domain.SessionValid:
			c.Set("owner_id", ownerID)
			c.Set("session_domain", string(d))
			c.Next()
		case domain.SessionExpired:
			abortUnauthorized(c, "SESSION_EXPIRED", "Session has expired, log in again")
		default:
			abortUnauthorized(c, "SESSION_INVALID", "No such session")
		}
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}
