package middleware

import (
	"Snapfeed/internal/pkg/response"
	"Snapfeed/internal/pkg/security"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenBlacklist 已注销 Token 的查询端
type TokenBlacklist interface {
	IsRevoked(ctx context.Context, signature string) (bool, error)
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(blacklist TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "未知错误")
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, http.StatusUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
