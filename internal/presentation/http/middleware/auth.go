package middleware

import (
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/utils"
	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key for the authenticated user's ID
	UserIDKey = "user_id"
	// UserEmailKey is the gin context key for the authenticated user's email
	UserEmailKey = "user_email"
)

// Auth validates the bearer token and stores the caller's identity in the
// gin context. It proves who the caller is, nothing more; tenant resolution
// happens in a separate step.
func Auth(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortWithError(c, apperror.ErrUnauthenticated)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.AbortWithError(c, apperror.ErrInvalidToken)
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.AbortWithError(c, apperror.ErrInvalidToken)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}
