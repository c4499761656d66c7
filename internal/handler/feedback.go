package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Kimani145/Corner/internal/middleware"
	"github.com/Kimani145/Corner/internal/service"
	"github.com/Kimani145/Corner/pkg/response"
)

// FeedbackHandler 反馈/问卷处理器
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler 创建反馈处理器
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedback 提交反馈
// POST /api/v1/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req service.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	fb, err := h.feedbackService.SubmitFeedback(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			response.Error(c, response.CodeInvalidRating)
			return
		}
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, fb)
}

// SubmitSurvey 提交问卷
// POST /api/v1/surveys
func (h *FeedbackHandler) SubmitSurvey(c *gin.Context) {
	var req service.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithMsg(c, response.CodeInvalidParams, err.Error())
		return
	}

	survey, err := h.feedbackService.SubmitSurvey(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, response.CodeServerError)
		return
	}

	response.Success(c, survey)
}
