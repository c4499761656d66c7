package model

import "time"

// Role 用户角色
const (
	RoleStudent = "student" // 学生
	RoleTeacher = "teacher" // 教师
	RoleAdmin   = "admin"   // 管理员
)

// IsValidRole 校验角色是否可注册（管理员不开放自助注册）
func IsValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// User 用户模型
type User struct {
	ID           int64     `json:"id,string" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Nickname     string    `json:"nickname" db:"nickname"`
	Email        string    `json:"email" db:"email"`
	Avatar       string    `json:"avatar" db:"avatar"`
	Role         string    `json:"role" db:"role"`
	Status       int       `json:"status" db:"status"`
	CreateAt     time.Time `json:"createAt" db:"create_at"`
	UpdateAt     time.Time `json:"updateAt" db:"update_at"`
}

// UserStatus 用户状态
const (
	UserStatusNormal   = 0 // 正常
	UserStatusDisabled = 1 // 禁用
)
