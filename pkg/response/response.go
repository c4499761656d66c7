package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/Kimani145/Corner/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 错误码常量（使用 pkg/errors 包的定义）
const (
	CodeSuccess = appErrors.CodeSuccess

	// 认证相关 10000-10999
	CodeUsernameExists     = appErrors.CodeUsernameExists
	CodeInvalidCredentials = appErrors.CodeInvalidCredentials
	CodeTokenInvalid       = appErrors.CodeTokenInvalid
	CodeTokenExpired       = appErrors.CodeTokenExpired
	CodeUserDisabled       = appErrors.CodeUserDisabled
	CodeInvalidRole        = appErrors.CodeInvalidRole
	CodePermissionDenied   = appErrors.CodePermissionDenied

	// 用户相关 11000-11999
	CodeUserNotFound  = appErrors.CodeUserNotFound
	CodeInvalidParams = appErrors.CodeInvalidParams

	// 消息相关 12000-12999
	CodeMessageNotFound  = appErrors.CodeMessageNotFound
	CodeEmptyContent     = appErrors.CodeEmptyContent
	CodeNotMessageSender = appErrors.CodeNotMessageSender

	// 课程相关 13000-13999
	CodeCourseNotFound = appErrors.CodeCourseNotFound

	// 反馈相关 14000-14999
	CodeInvalidRating = appErrors.CodeInvalidRating

	// 系统错误 50000-50999
	CodeServerError = appErrors.CodeServerError
	CodeDBError     = appErrors.CodeDBError
)

// 错误信息
var codeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeUsernameExists:     "用户名已存在",
	CodeInvalidCredentials: "用户名或密码错误",
	CodeTokenInvalid:       "Token 无效",
	CodeTokenExpired:       "Token 已过期",
	CodeUserDisabled:       "用户已被禁用",
	CodeInvalidRole:        "角色不合法",
	CodePermissionDenied:   "没有操作权限",
	CodeUserNotFound:       "用户不存在",
	CodeInvalidParams:      "参数校验失败",
	CodeMessageNotFound:    "消息不存在",
	CodeEmptyContent:       "消息内容不能为空",
	CodeNotMessageSender:   "只能操作自己发送的消息",
	CodeCourseNotFound:     "课程不存在",
	CodeInvalidRating:      "评分必须在 1-5 之间",
	CodeServerError:        "服务器内部错误",
	CodeDBError:            "数据库错误",
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int) {
	message := codeMessages[code]
	if message == "" {
		message = "unknown error"
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// ErrorWithMsg 自定义错误消息
func ErrorWithMsg(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// ErrorFromAppError 从 AppError 生成错误响应
func ErrorFromAppError(c *gin.Context, err error) {
	code := appErrors.GetCode(err)
	message := appErrors.GetMessage(err)
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:    CodeTokenInvalid,
		Message: codeMessages[CodeTokenInvalid],
		Data:    nil,
	})
}

// Forbidden 无权限
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:    CodePermissionDenied,
		Message: codeMessages[CodePermissionDenied],
		Data:    nil,
	})
}
