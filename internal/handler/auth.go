package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/jwt"
	"github.com/Kimani145/Corner/pkg/response"
)

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, req *service.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *service.LoginRequest) (*service.LoginResponse, error)
	Logout(ctx context.Context, userID int64, platform, accessToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*service.LoginResponse, error)
}

// AuthHandler 认证处理器
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建学生或教师账号
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body service.RegisterRequest true "注册信息"
// @Success      200  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			response.Error(c, response.CodeUsernameExists)
			return
		}
		if errors.Is(err, service.ErrInvalidRole) {
			response.Error(c, response.CodeInvalidRole)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	// ID 统一以字符串下发，与模型的 json:",string" 序列化保持一致
	response.Success(c, gin.H{
		"user_id":  strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"nickname": user.Nickname,
		"role":     user.Role,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  用户登录获取 Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Param        request body service.LoginRequest true "登录信息"
// @Success      200  {object}  response.Response{data=service.LoginResponse}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, response.CodeInvalidCredentials)
			return
		}
		if errors.Is(err, service.ErrUserDisabled) {
			response.Error(c, response.CodeUserDisabled)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, resp)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  用户登出，Token 失效
// @Tags         认证
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	platform := middleware.GetPlatform(c)
	token := middleware.GetAccessToken(c)

	if err := h.authService.Logout(c.Request.Context(), userID, platform, token); err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, nil)
}

// RefreshToken 刷新 Token
// @Summary      刷新 Token
// @Tags         认证
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=service.LoginResponse}
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	resp, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			response.Error(c, response.CodeTokenExpired)
			return
		}
		if errors.Is(err, jwt.ErrTokenInvalid) {
			response.Error(c, response.CodeTokenInvalid)
			return
		}
		if errors.Is(err, service.ErrUserDisabled) {
			response.Error(c, response.CodeUserDisabled)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, resp)
}
