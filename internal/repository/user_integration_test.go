package repository

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kimani145/Corner/internal/model"
)

// TestUserRepository_AdminBootstrap 验证初始化脚本预置的管理员账号
// 管理员不开放自助注册，/admin 接口依赖这条预置记录
func TestUserRepository_AdminBootstrap(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	admin, err := repo.GetByUsername(ctx, "admin")
	if errors.Is(err, ErrUserNotFound) {
		t.Skip("跳过测试：schema.sql 未在测试库执行，没有预置管理员")
	}
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}

	if admin.Role != model.RoleAdmin {
		t.Errorf("Expected role '%s', got '%s'", model.RoleAdmin, admin.Role)
	}
	if admin.Status != model.UserStatusNormal {
		t.Errorf("Expected status %d, got %d", model.UserStatusNormal, admin.Status)
	}

	// pgcrypto 生成的 bcrypt 哈希必须能通过服务端校验
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Errorf("Expected default password to verify: %v", err)
	}
}
