package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-hub/internal/pkg/jwtutil"
	"gamestore-hub/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// AuthJWT rejects requests without a valid bearer token and stores the
// authenticated user id on the context. All token problems collapse
// into the same 401.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := jwtutil.ExtractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication token not found")
			c.Abort()
			return
		}

		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
