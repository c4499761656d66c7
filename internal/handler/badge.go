package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// BadgeHandler 通知角标处理器
type BadgeHandler struct {
	badgeService *service.BadgeService
}

// NewBadgeHandler 创建角标处理器
func NewBadgeHandler(badgeService *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

// Get 获取当前角标状态
// GET /api/v1/notifications/badge
func (h *BadgeHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)

	badge, err := h.badgeService.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, badge)
}

// MarkSeen 标记通知已查看
// POST /api/v1/notifications/seen
// 响应即为清零后的角标，客户端不必等待订阅重新下发
func (h *BadgeHandler) MarkSeen(c *gin.Context) {
	userID := middleware.GetUserID(c)

	badge, err := h.badgeService.MarkSeen(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, badge)
}

// Stream 角标实时推送（SSE）
// GET /api/v1/notifications/stream
// 连接期间持有订阅句柄，断开时随 defer 取消，不会泄漏监听
func (h *BadgeHandler) Stream(c *gin.Context) {
	userID := middleware.GetUserID(c)

	sub, err := h.badgeService.Subscribe(userID)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}
	defer sub.Close()

	// 先下发一次当前状态
	if badge, err := h.badgeService.Get(c.Request.Context(), userID); err == nil {
		c.SSEvent("badge", badge)
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case badge, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent("badge", badge)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
