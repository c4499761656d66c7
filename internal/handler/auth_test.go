package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kimani145/Corner/internal/model"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// MockAuthService 模拟认证服务
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req *service.RegisterRequest) (*model.User, error)
	LoginFunc        func(ctx context.Context, req *service.LoginRequest) (*service.LoginResponse, error)
	LogoutFunc       func(ctx context.Context, userID int64, platform, accessToken string) error
	RefreshTokenFunc func(ctx context.Context, refreshToken string) (*service.LoginResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *service.RegisterRequest) (*model.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *service.LoginRequest) (*service.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, userID int64, platform, accessToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, platform, accessToken)
	}
	return nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.LoginResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return nil, nil
}

// setupTestRouter 创建测试用的 gin 路由
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// APIResponse 用于解析响应体
type APIResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestAuthHandler_Login_Success(t *testing.T) {
	expectedResp := &service.LoginResponse{
		UserID:       1,
		Role:         "student",
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresAt:    1767225600,
	}

	mockService := &MockAuthService{
		LoginFunc: func(ctx context.Context, req *service.LoginRequest) (*service.LoginResponse, error) {
			assert.Equal(t, "testuser", req.Username)
			assert.Equal(t, "password123", req.Password)
			assert.Equal(t, "web", req.Platform)
			return expectedResp, nil
		},
	}

	h := NewAuthHandler(mockService)
	router := setupTestRouter()
	router.POST("/auth/login", h.Login)

	reqBody := map[string]string{
		"username": "testuser",
		"password": "password123",
		"platform": "web",
	}
	reqJSON, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	var loginData service.LoginResponse
	err = json.Unmarshal(resp.Data, &loginData)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loginData.UserID)
	assert.Equal(t, "student", loginData.Role)
	assert.Equal(t, "test-access-token", loginData.AccessToken)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := &MockAuthService{
		LoginFunc: func(ctx context.Context, req *service.LoginRequest) (*service.LoginResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}

	h := NewAuthHandler(mockService)
	router := setupTestRouter()
	router.POST("/auth/login", h.Login)

	reqBody := map[string]string{
		"username": "testuser",
		"password": "wrongpassword",
	}
	reqJSON, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidCredentials, resp.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&MockAuthService{})
	router := setupTestRouter()
	router.POST("/auth/login", h.Login)

	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"username":"testuser"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidParams, resp.Code)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockService := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *service.RegisterRequest) (*model.User, error) {
			assert.Equal(t, "newstudent", req.Username)
			assert.Equal(t, model.RoleStudent, req.Role)
			return &model.User{
				ID:       42,
				Username: req.Username,
				Nickname: req.Nickname,
				Role:     req.Role,
			}, nil
		},
	}

	h := NewAuthHandler(mockService)
	router := setupTestRouter()
	router.POST("/auth/register", h.Register)

	reqBody := map[string]string{
		"username": "newstudent",
		"password": "password123",
		"nickname": "New Student",
		"role":     "student",
	}
	reqJSON, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	// ID 以字符串下发，和模型序列化保持一致
	var data struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, "42", data.UserID)
	assert.Equal(t, "newstudent", data.Username)
	assert.Equal(t, "student", data.Role)
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	mockService := &MockAuthService{
		RegisterFunc: func(ctx context.Context, req *service.RegisterRequest) (*model.User, error) {
			return nil, service.ErrInvalidRole
		},
	}

	h := NewAuthHandler(mockService)
	router := setupTestRouter()
	router.POST("/auth/register", h.Register)

	// 管理员不开放自助注册
	reqBody := map[string]string{
		"username": "wannabeadmin",
		"password": "password123",
		"nickname": "Admin Wannabe",
		"role":     "admin",
	}
	reqJSON, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(reqJSON))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, response.CodeInvalidRole, resp.Code)
}
