package auth

import (
	"errors"
	"time"

	"oolongblog/config"

	"github.com/golang-jwt/jwt/v5"
)

// 令牌里的角色取值
const (
	RoleAdmin   = "admin"
	RoleVisitor = "visitor"
)

// Claims defines the JWT payload attached to every authenticated request.
// 管理员和访客共用同一结构，只靠 Role 区分。
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the given principal. Admin tokens
// live 24h, visitor tokens 7d (both configurable).
func GenerateToken(userID uint, role string) (string, error) {
	expire := config.GlobalConfig.JWT.VisitorExpire
	if role == RoleAdmin {
		expire = config.GlobalConfig.JWT.AdminExpire
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GlobalConfig.JWT.Secret))
}

// ParseToken validates signature + expiry and returns the embedded claims.
// 没有服务端吊销表，已签发的令牌到期前一直有效。
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// TokenMaxAge 返回 cookie 的 Max-Age（秒）
func TokenMaxAge(role string) int {
	if role == RoleAdmin {
		return int(config.GlobalConfig.JWT.AdminExpire)
	}
	return int(config.GlobalConfig.JWT.VisitorExpire)
}
