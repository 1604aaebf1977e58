package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/utils"
)

// AuthMiddleware validates the bearer token and puts the acting user's id on
// the context as "hostID". Every host-scoped handler reads it from there.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, utils.Unauthorized("인증이 필요합니다"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims.UserID == 0 {
			utils.RespondError(c, utils.Unauthorized("유효하지 않은 토큰입니다"))
			c.Abort()
			return
		}

		c.Set("hostID", claims.UserID)
		c.Next()
	}
}

// HostID returns the authenticated user id set by AuthMiddleware.
func HostID(c *gin.Context) uint {
	return c.GetUint("hostID")
}
