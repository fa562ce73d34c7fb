package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// SchedulerAuth authenticates scheduled-job calls (the recurring-bill
// materializer trigger). It accepts either the statically configured
// scheduler token or a persisted service token validated by tokenSvc.
// On success the request is marked so the JWT middleware is skipped.
func SchedulerAuth(staticToken string, tokenSvc portssvc.ServiceTokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" || token == authHeader {
			token = c.GetHeader("x-api-key")
		}
		if token == "" {
			logger.Warn("Scheduler call without credentials")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing scheduler credentials"})
			return
		}

		if staticToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(staticToken)) == 1 {
			markSchedulerAuthenticated(c, "scheduler")
			c.Next()
			return
		}

		if tokenSvc != nil {
			if principal, err := tokenSvc.ValidateToken(c.Request.Context(), token); err == nil {
				markSchedulerAuthenticated(c, principal)
				c.Next()
				return
			}
		}

		logger.Warn("Scheduler call with invalid credentials")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid scheduler credentials"})
	}
}

func markSchedulerAuthenticated(c *gin.Context, principal string) {
	c.Set("authMethod", "service_token")
	c.Set(string(userIDKey), principal)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, principal))
}
