package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         []byte
	jwtExpirationTime time.Duration
)

// Init 设置签发密钥与有效期，启动时调用一次
func Init(secret string, expireHours int) {
	jwtSecret = []byte(secret)
	jwtExpirationTime = time.Duration(expireHours) * time.Hour
}

// TokenTTL 当前配置的 Token 有效期
func TokenTTL() time.Duration {
	return jwtExpirationTime
}

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
