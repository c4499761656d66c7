package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// DashboardHandler 管理端看板处理器
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler 创建看板处理器
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Report 获取统计报表
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) Report(c *gin.Context) {
	report, err := h.dashboardService.Report(c.Request.Context())
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, report)
}

// ListFeedback 获取最近的反馈原始记录
// GET /api/v1/admin/feedback
func (h *DashboardHandler) ListFeedback(c *gin.Context) {
	feedbacks, err := h.dashboardService.RecentFeedback(c.Request.Context())
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"list":  feedbacks,
		"total": len(feedbacks),
	})
}

// ListSurveys 获取最近的问卷原始记录
// GET /api/v1/admin/surveys
func (h *DashboardHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.dashboardService.RecentSurveys(c.Request.Context())
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, gin.H{
		"list":  surveys,
		"total": len(surveys),
	})
}
