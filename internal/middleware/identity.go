package middleware

import (
	"strings"

	"studyspace_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// IdentityMiddleware 从请求头取出调用方自报的用户标识。
// 用户身份是不透明字符串，这里不做任何鉴权（设计上没有多用户认证）。
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			userID = c.Query("userId")
		}

		if userID == "" {
			util.BadRequest(c, "missing X-User-ID header")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext 返回当前请求的用户标识
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}
