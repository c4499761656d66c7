package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/repository"
	"github.com/Kimani145/Corner/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrInvalidRole        = errors.New("invalid role")
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=50"`
	Nickname string `json:"nickname" binding:"required,min=1,max=50"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Platform string `json:"platform"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	UserID       int64  `json:"user_id,string"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	tokenRepo  *repository.TokenRepository
	jwtService *jwt.Service
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, tokenRepo *repository.TokenRepository, jwtService *jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Register 用户注册
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	// 管理员不开放自助注册
	if !model.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	// 检查用户名是否存在
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrUsernameExists
	}

	// 密码加密
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		Nickname:     req.Nickname,
		Email:        req.Email,
		Role:         req.Role,
		Status:       model.UserStatusNormal,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 用户登录
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	// 查询用户
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 检查用户状态
	if user.Status != model.UserStatusNormal {
		return nil, ErrUserDisabled
	}

	platform := req.Platform
	if platform == "" {
		platform = string(jwt.PlatformUnknown)
	}

	// 生成 Token
	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Role, jwt.Platform(platform))
	if err != nil {
		return nil, err
	}

	// 清理同平台旧 Token，再保存新的会话上下文
	if err := s.tokenRepo.DeleteOldToken(ctx, user.ID, platform); err != nil {
		return nil, err
	}

	userInfo := &repository.UserTokenInfo{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Role:     user.Role,
		Platform: platform,
	}
	if err := s.tokenRepo.SaveToken(ctx, userInfo, tokenPair.AccessToken, s.jwtService.GetAccessExpire()); err != nil {
		return nil, err
	}

	return &LoginResponse{
		UserID:       user.ID,
		Role:         user.Role,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}

// Logout 用户登出
func (s *AuthService) Logout(ctx context.Context, userID int64, platform, accessToken string) error {
	return s.tokenRepo.DeleteToken(ctx, userID, platform, accessToken)
}

// RefreshToken 刷新 Token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	// 验证 Refresh Token
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// 检查用户是否存在
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	// 检查用户状态
	if user.Status != model.UserStatusNormal {
		return nil, ErrUserDisabled
	}

	// 生成新的 Token Pair
	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Role, claims.Platform)
	if err != nil {
		return nil, err
	}

	platform := string(claims.Platform)
	if err := s.tokenRepo.DeleteOldToken(ctx, user.ID, platform); err != nil {
		return nil, err
	}

	userInfo := &repository.UserTokenInfo{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Role:     user.Role,
		Platform: platform,
	}
	if err := s.tokenRepo.SaveToken(ctx, userInfo, tokenPair.AccessToken, s.jwtService.GetAccessExpire()); err != nil {
		return nil, err
	}

	return &LoginResponse{
		UserID:       user.ID,
		Role:         user.Role,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    tokenPair.ExpiresAt,
	}, nil
}
