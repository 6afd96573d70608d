package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipeblog-backend/internal/shared/response"
	"recipeblog-backend/pkg/jwt"
)

// ContextUserIDKey is the gin context key holding the authenticated user ID
const ContextUserIDKey = "userID"

// AuthMiddleware verifies the bearer token on every protected route.
// It only establishes WHO is asking - ownership checks live in the
// services. On any failure the request is aborted with 401 before the
// handler runs.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}
		token := parts[1]

		// 3. Verify and parse the JWT
		claims, err := manager.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, "token has expired")
			} else {
				response.Unauthorized(c, "invalid token")
			}
			c.Abort()
			return
		}

		// 4. Convert user ID claim to uuid.UUID
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		// 5. Attach userID to the request context for downstream handlers
		c.Set(ContextUserIDKey, userID)

		c.Next()
	}
}

// GetUserID reads the authenticated user ID set by AuthMiddleware.
// ok = false means the middleware did not run or rejected the request.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return userID, true
}
