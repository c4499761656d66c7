package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/pkg/response"
)

// TokenAuth 基于 Redis 会话的认证中间件
// 把 Bearer Token 解析为显式会话上下文 {userID, username, role} 注入请求；
// 剩余 TTL 低于阈值时自动续期
func TokenAuth(tokenRepo *repository.TokenRepository, accessExpire, autoRenewThreshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userInfo, err := tokenRepo.GetUserInfoByToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, response.CodeServerError)
			c.Abort()
			return
		}
		if userInfo == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 快过期时自动续期，续期失败不影响本次请求
		if autoRenewThreshold > 0 {
			if ttl, err := tokenRepo.GetTokenTTL(c.Request.Context(), token); err == nil && ttl > 0 && ttl < autoRenewThreshold {
				_ = tokenRepo.RefreshTokenExpire(c.Request.Context(), userInfo, token, accessExpire)
			}
		}

		c.Set("user_id", userInfo.UserID)
		c.Set("username", userInfo.Username)
		c.Set("role", userInfo.Role)
		c.Set("platform", userInfo.Platform)
		c.Set("access_token", token)
		c.Next()
	}
}

// RequireRole 角色校验中间件，必须在 TokenAuth 之后使用
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != role {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken 从 Authorization header 提取 token
func extractToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}

// GetUserID 从 context 获取 user_id
func GetUserID(c *gin.Context) int64 {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	return userID.(int64)
}

// GetUsername 从 context 获取 username
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}

// GetRole 从 context 获取 role
func GetRole(c *gin.Context) string {
	role, exists := c.Get("role")
	if !exists {
		return ""
	}
	return role.(string)
}

// GetPlatform 从 context 获取 platform
func GetPlatform(c *gin.Context) string {
	platform, exists := c.Get("platform")
	if !exists {
		return ""
	}
	return platform.(string)
}

// GetAccessToken 从 context 获取本次请求的 access token
func GetAccessToken(c *gin.Context) string {
	token, exists := c.Get("access_token")
	if !exists {
		return ""
	}
	return token.(string)
}
