package middleware

import (
	"net/http"
	"strings"
	"time"

	"Tube/pkg/jwt"
	"Tube/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 强制登录态，没有合法 token 直接 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		if time.Until(claims.ExpiresAt.Time) < 20 {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				"access",
				60*time.Second,
			)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}

// OptionalAuth 可选登录态，个人页/搜索/推荐允许匿名访问
// token 合法则注入 user_id，否则按匿名访客放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
